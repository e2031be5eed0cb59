// Package replace is the find/replace engine: it scans text for every
// match of a pattern, resolves what each individual match substitutes to,
// and produces the fully replaced output. Matching semantics come from the
// evaluator bound in pkg/pattern; this package owns the scan protocol and
// the per-match bookkeeping that the diff views are built from.
package replace

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/pattern"
)

// ErrInvalidPattern mirrors pattern.ErrInvalidPattern so engine callers can
// classify compile failures without importing the compiler package
var ErrInvalidPattern = pattern.ErrInvalidPattern

// Match records one occurrence found by a global scan. Index and Length
// count runes.
type Match struct {
	// Index is the 0-based rune offset of the match in the original text
	Index int `json:"index"`

	// Length is the rune length of the matched text, possibly 0
	Length int `json:"length"`

	// Text is the matched substring
	Text string `json:"matched_text"`

	// Substituted is what the replacement template resolves to for this
	// specific match, back-references included
	Substituted string `json:"substituted_text"`
}

// Result aggregates a full preview: the untouched input, the fully
// replaced output, and the per-match breakdown
type Result struct {
	// Original is the input text, unmodified
	Original string `json:"original"`

	// Replaced is the full substitution output under the caller's flags
	Replaced string `json:"replaced"`

	// MatchCount is len(Matches)
	MatchCount int `json:"match_count"`

	// Matches is the ordered left-to-right match list from the global scan
	Matches []Match `json:"matches"`

	// Global records whether the g flag was set. The match list always
	// covers the whole input; Global says how much of it Replaced consumed,
	// which renderers need to mark the right spans. Not part of the wire
	// format.
	Global bool `json:"-"`
}

// Options tunes a single engine call
type Options struct {
	// Deadline bounds evaluator work for the call. Zero means no bound.
	// Expiry surfaces as a runtime fault, not a partial result.
	Deadline time.Duration
}

// Preview computes the replaced text under the caller's verbatim flags
// together with the global match breakdown
func Preview(ctx context.Context, text, expr, template, flags string) (*Result, error) {
	return PreviewWith(ctx, text, expr, template, flags, Options{})
}

// PreviewWith is Preview with call options
func PreviewWith(ctx context.Context, text, expr, template, flags string, opts Options) (*Result, error) {
	replaced, err := ExecuteWith(ctx, text, expr, template, flags, opts)
	if err != nil {
		return nil, err
	}

	matches, err := CollectWith(ctx, text, expr, template, flags, opts)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", expr).
		Str("flags", flags).
		Int("match_count", len(matches)).
		Msg("computed replace preview")

	return &Result{
		Original:   text,
		Replaced:   replaced,
		MatchCount: len(matches),
		Matches:    matches,
		// Flags are already validated by the two calls above
		Global: strings.ContainsRune(flags, 'g'),
	}, nil
}
