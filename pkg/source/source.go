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
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Source is the interface for replacement input providers
type Source interface {
	// 📄 Read returns the complete input text
	Read(ctx context.Context) (string, error)

	// 📝 Describe returns a short label for status output
	Describe() string
}

// 🎯 Resolve picks a source for the given target. "-" selects stdin,
// fromGitHub treats the target as an owner/repo[@ref]:path reference,
// and anything else is a local file path.
func Resolve(ctx context.Context, target string, fromGitHub bool) (Source, error) {
	logger := zerolog.Ctx(ctx)

	switch {
	case target == "-":
		logger.Debug().Msg("reading from stdin")
		return NewStdinSource(os.Stdin), nil
	case fromGitHub:
		ref, err := ParseGitHubRef(target)
		if err != nil {
			return nil, errors.Errorf("resolving github source: %w", err)
		}
		logger.Debug().Str("ref", ref.String()).Msg("reading from github")
		return NewGitHubSource(ref), nil
	default:
		logger.Debug().Str("path", target).Msg("reading from file")
		return NewFileSource(target), nil
	}
}
