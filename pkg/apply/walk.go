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

package apply

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🔍 selectFiles walks the root and returns the slash-separated relative
// paths of every regular file that survives the ignore globs, in walk order.
func (a *Applier) selectFiles(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(a.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(a.opts.Root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if a.ignored(ctx, rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", a.opts.Root, err)
	}

	logger.Debug().Int("files", len(files)).Str("root", a.opts.Root).Msg("selected files")

	return files, nil
}

// ⏭️ ignored checks if a file is excluded by an ignore glob
func (a *Applier) ignored(ctx context.Context, rel string) bool {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range a.cfg.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching ignore glob")
			continue
		}
		if matched {
			logger.Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by glob")
			return true
		}
	}

	return false
}

// 🎯 ruleApplies checks if a rule's files glob selects the given path
func ruleApplies(rule config.Rule, rel string) bool {
	if rule.Files == "" {
		return true
	}
	matched, err := doublestar.Match(rule.Files, rel)
	if err != nil {
		return false
	}
	return matched
}
