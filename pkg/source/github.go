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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"gitlab.com/tozd/go/errors"
)

// 🔖 GitHubRef identifies a single file in a GitHub repository
type GitHubRef struct {
	Owner string // Repository owner
	Repo  string // Repository name
	Ref   string // Branch, tag, or commit, empty for the default branch
	Path  string // File path within the repository
}

// 🔍 ParseGitHubRef parses an "owner/repo[@ref]:path" reference. A leading
// "github.com/" host prefix is accepted and stripped.
func ParseGitHubRef(s string) (GitHubRef, error) {
	repo, path, ok := strings.Cut(s, ":")
	if !ok || path == "" {
		return GitHubRef{}, errors.Errorf("invalid github reference %q (expected owner/repo[@ref]:path)", s)
	}

	repo = strings.TrimPrefix(repo, "github.com/")

	var ref string
	if idx := strings.LastIndex(repo, "@"); idx != -1 {
		repo, ref = repo[:idx], repo[idx+1:]
	}

	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return GitHubRef{}, errors.Errorf("invalid github repository %q (expected owner/repo)", repo)
	}

	return GitHubRef{Owner: parts[0], Repo: parts[1], Ref: ref, Path: path}, nil
}

// String returns the canonical owner/repo[@ref]:path form
func (r GitHubRef) String() string {
	if r.Ref == "" {
		return fmt.Sprintf("%s/%s:%s", r.Owner, r.Repo, r.Path)
	}
	return fmt.Sprintf("%s/%s@%s:%s", r.Owner, r.Repo, r.Ref, r.Path)
}

// 🐙 GitHubSource reads one file from a GitHub repository
type GitHubSource struct {
	client *github.Client
	ref    GitHubRef
}

// 🏭 NewGitHubSource creates a source for the given reference. A
// GITHUB_TOKEN environment variable is used when present, which raises
// rate limits and allows private repositories.
func NewGitHubSource(ref GitHubRef) *GitHubSource {
	client := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	}

	return &GitHubSource{client: client, ref: ref}
}

// 📄 Read fetches and decodes the referenced file's contents
func (s *GitHubSource) Read(ctx context.Context) (string, error) {
	content, _, _, err := s.client.Repositories.GetContents(ctx, s.ref.Owner, s.ref.Repo, s.ref.Path, &github.RepositoryContentGetOptions{
		Ref: s.ref.Ref,
	})
	if err != nil {
		return "", errors.Errorf("getting file content: %w", err)
	}
	if content == nil {
		return "", errors.Errorf("%s is a directory, not a file", s.ref.Path)
	}

	data, err := content.GetContent()
	if err != nil {
		return "", errors.Errorf("decoding content: %w", err)
	}

	return data, nil
}

// 📝 Describe returns the source info string for status output
func (s *GitHubSource) Describe() string {
	return "github.com/" + s.ref.String()
}
