package apply

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestUserLogger_LogFileResult(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	tests := []struct {
		name     string
		dryRun   bool
		res      FileResult
		contains []string
	}{
		{
			name:     "changed_file",
			res:      FileResult{Path: "a.txt", Outcome: OutcomeChanged, Matches: 3},
			contains: []string{"Updated a.txt", "(3 matches)"},
		},
		{
			name:     "changed_file_in_dry_run",
			dryRun:   true,
			res:      FileResult{Path: "a.txt", Outcome: OutcomeChanged, Matches: 1},
			contains: []string{"Would update a.txt"},
		},
		{
			name:     "unchanged_file",
			res:      FileResult{Path: "b.txt", Outcome: OutcomeUnchanged},
			contains: []string{"Unchanged b.txt"},
		},
		{
			name:     "failed_file",
			res:      FileResult{Path: "c.txt", Outcome: OutcomeError, Err: errors.New("rule 0: boom")},
			contains: []string{"Failed c.txt", "rule 0: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := &UserLogger{
				log:    zerolog.New(zerolog.TestWriter{T: t}),
				out:    &buf,
				dryRun: tt.dryRun,
			}

			u.LogFileResult(tt.res)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want, "user output should mention %q", want)
			}
		})
	}
}

func TestUserLogger_LogRunSummary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	u := &UserLogger{
		log: zerolog.New(zerolog.TestWriter{T: t}),
		out: &buf,
	}

	u.LogRunSummary(&Summary{Scanned: 3, Changed: 2, Matches: 5, Errors: 1})

	out := buf.String()
	assert.Contains(t, out, "3 files scanned", "summary should count scanned files")
	assert.Contains(t, out, "2 changed", "summary should count changed files")
	assert.Contains(t, out, "5 matches", "summary should count matches")
	assert.Contains(t, out, "1 failed", "summary should count failures")
}

func TestNewUserLogger_DryRunVerb(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
	u := NewUserLogger(ctx, true)

	var buf bytes.Buffer
	u.out = &buf

	u.LogRunSummary(&Summary{Scanned: 1, Changed: 1})

	assert.Contains(t, buf.String(), "would change", "dry run summaries should use the conditional verb")
}
