// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubRef(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantRef   string
		wantPath  string
		wantErr   bool
	}{
		{
			name:      "simple reference",
			input:     "walteh/resub:README.md",
			wantOwner: "walteh",
			wantRepo:  "resub",
			wantPath:  "README.md",
		},
		{
			name:      "reference with branch",
			input:     "walteh/resub@main:docs/guide.md",
			wantOwner: "walteh",
			wantRepo:  "resub",
			wantRef:   "main",
			wantPath:  "docs/guide.md",
		},
		{
			name:      "reference with tag",
			input:     "golang/tools@v0.1.0:gopls/README.md",
			wantOwner: "golang",
			wantRepo:  "tools",
			wantRef:   "v0.1.0",
			wantPath:  "gopls/README.md",
		},
		{
			name:    "missing path",
			input:   "walteh/resub",
			wantErr: true,
		},
		{
			name:    "empty path",
			input:   "walteh/resub:",
			wantErr: true,
		},
		{
			name:      "host prefix is stripped",
			input:     "github.com/walteh/resub@main:README.md",
			wantOwner: "walteh",
			wantRepo:  "resub",
			wantRef:   "main",
			wantPath:  "README.md",
		},
		{
			name:    "missing owner",
			input:   "resub:README.md",
			wantErr: true,
		},
		{
			name:    "too many repo segments",
			input:   "walteh/group/resub:README.md",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseGitHubRef(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
			assert.Equal(t, tt.wantRef, ref.Ref)
			assert.Equal(t, tt.wantPath, ref.Path)
		})
	}
}

func TestGitHubRef_String(t *testing.T) {
	tests := []struct {
		name string
		ref  GitHubRef
		want string
	}{
		{
			name: "with ref",
			ref:  GitHubRef{Owner: "walteh", Repo: "resub", Ref: "main", Path: "README.md"},
			want: "walteh/resub@main:README.md",
		},
		{
			name: "default branch",
			ref:  GitHubRef{Owner: "walteh", Repo: "resub", Path: "README.md"},
			want: "walteh/resub:README.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestGitHubSource_Describe(t *testing.T) {
	ref, err := ParseGitHubRef("walteh/resub@main:README.md")
	require.NoError(t, err)

	src := NewGitHubSource(ref)
	assert.Equal(t, "github.com/walteh/resub@main:README.md", src.Describe())
}
