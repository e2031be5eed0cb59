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
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/config"
	"github.com/walteh/resub/pkg/replace"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 Options configures a batch run over a file tree
type Options struct {
	Root   string      // directory the rule set is applied to
	DryRun bool        // report changes without writing files
	Jobs   int         // concurrent file workers, defaults to the CPU count
	User   *UserLogger // optional per-file progress stream
}

// 🎨 Outcome classifies what a run did to one file
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeChanged
	OutcomeError
)

// 📄 FileResult reports what happened to a single file
type FileResult struct {
	Path    string  // path relative to the run root
	Outcome Outcome // what the run did to the file
	Matches int     // total matches across all rules
	Err     error   // set when Outcome is OutcomeError
}

// 📊 Summary aggregates file results across a run
type Summary struct {
	Scanned   int          // files considered
	Changed   int          // files rewritten, or that would be in dry run
	Unchanged int          // files left alone
	Errors    int          // files that failed
	Matches   int          // total matches across all files
	Results   []FileResult // per-file outcomes in walk order
}

func (s *Summary) add(res FileResult) {
	s.Results = append(s.Results, res)
	s.Scanned++
	s.Matches += res.Matches
	switch res.Outcome {
	case OutcomeChanged:
		s.Changed++
	case OutcomeError:
		s.Errors++
	default:
		s.Unchanged++
	}
}

// 🎮 Applier runs every rule in a rule set against a file tree
type Applier struct {
	cfg  *config.RuleSet
	opts Options
}

// 🏭 New creates an applier for the given rule set
func New(cfg *config.RuleSet, opts Options) (*Applier, error) {
	if cfg == nil {
		return nil, errors.Errorf("rule set is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating rule set: %w", err)
	}
	if opts.Root == "" {
		return nil, errors.Errorf("root directory is required")
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	return &Applier{
		cfg:  cfg,
		opts: opts,
	}, nil
}

// 🏃 Run selects files under the root, applies every rule to each of them,
// and reports per-file results in walk order.
func (a *Applier) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	files, err := a.selectFiles(ctx)
	if err != nil {
		return nil, errors.Errorf("selecting files: %w", err)
	}

	logger.Debug().
		Int("files", len(files)).
		Int("jobs", a.opts.Jobs).
		Bool("dry_run", a.opts.DryRun).
		Msg("starting run")

	// Workers record failures in their FileResult so one bad file does not
	// stop the rest of the tree.
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = a.applyFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("waiting for workers: %w", err)
	}

	summary := &Summary{}
	for _, res := range results {
		summary.add(res)
		if a.opts.User != nil {
			a.opts.User.LogFileResult(res)
		}
	}
	if a.opts.User != nil {
		a.opts.User.LogRunSummary(summary)
	}

	return summary, nil
}

// 📄 applyFile runs every applicable rule against a single file
func (a *Applier) applyFile(ctx context.Context, path string) FileResult {
	res := FileResult{Path: path}

	if err := ctx.Err(); err != nil {
		res.Outcome = OutcomeError
		res.Err = errors.Errorf("run canceled: %w", err)
		return res
	}

	absPath := filepath.Join(a.opts.Root, filepath.FromSlash(path))

	info, err := os.Stat(absPath)
	if err != nil {
		res.Outcome = OutcomeError
		res.Err = errors.Errorf("inspecting file: %w", err)
		return res
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		res.Outcome = OutcomeError
		res.Err = errors.Errorf("reading file: %w", err)
		return res
	}

	original := string(data)
	updated := original

	for i, rule := range a.cfg.Rules {
		if !ruleApplies(rule, path) {
			continue
		}
		prev, err := replace.PreviewWith(ctx, updated, rule.Find, rule.Replace, rule.Flags, replace.Options{
			Deadline: a.cfg.Deadline(),
		})
		if err != nil {
			res.Outcome = OutcomeError
			res.Err = errors.Errorf("rule %d: %w", i, err)
			return res
		}
		res.Matches += prev.MatchCount
		updated = prev.Replaced
	}

	if updated == original {
		res.Outcome = OutcomeUnchanged
		return res
	}

	res.Outcome = OutcomeChanged
	if a.opts.DryRun {
		return res
	}

	if err := writeFileAtomic(absPath, []byte(updated), info.Mode()); err != nil {
		res.Outcome = OutcomeError
		res.Err = err
		return res
	}

	return res
}

// 💾 writeFileAtomic replaces path by writing a sibling temp file and
// renaming it into place, keeping the original mode.
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode.Perm()); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// WriteFile's permission argument is subject to the umask
	if err := os.Chmod(tempPath, mode.Perm()); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("restoring file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // clean up the temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
