// Package pattern compiles user-supplied regular expressions and flag
// strings into matchers backed by the regexp2 evaluator. A matcher belongs
// to the call that compiled it; nothing here caches or shares compiled
// state between calls.
package pattern

import (
	"time"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidPattern classifies every compile failure, whether the pattern
// text is malformed or the flag string carries an unknown character.
// Callers test for it with errors.Is.
var ErrInvalidPattern = errors.Base("invalid regular expression")

// Spec is an immutable pattern+flags pair as entered by the caller
type Spec struct {
	// Expr is the regular expression source text
	Expr string

	// Flags is any combination of g, i, m, s, u
	Flags string
}

// Compile builds a Matcher from the Spec
func (s Spec) Compile() (*Matcher, error) {
	return Compile(s.Expr, s.Flags)
}

// Matcher is a compiled pattern ready for scanning and substitution
type Matcher struct {
	re     *regexp2.Regexp
	global bool
}

// Occurrence is one raw match produced by a scan step. Index and Length
// count runes, matching the evaluator's view of the input.
type Occurrence struct {
	// Index is the 0-based rune offset of the match
	Index int

	// Length is the rune length of the matched text, possibly 0
	Length int

	// Text is the matched substring
	Text string
}

// Compile builds a Matcher from a pattern and a flag string. The g flag
// selects call-site behavior and is not an evaluator option; i, m, s and u
// map onto the evaluator's IgnoreCase, Multiline, Singleline and Unicode
// modes. Any failure returns a nil Matcher and an error wrapping
// ErrInvalidPattern, never a partially-built value.
func Compile(expr, flags string) (*Matcher, error) {
	var opts regexp2.RegexOptions
	global := false

	for _, f := range flags {
		switch f {
		case 'g':
			global = true
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		default:
			return nil, errors.Errorf("%w: unknown flag %q", ErrInvalidPattern, string(f))
		}
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, errors.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &Matcher{re: re, global: global}, nil
}

// Global reports whether the g flag was present at compile time
func (m *Matcher) Global() bool {
	return m.global
}

// SetDeadline bounds every subsequent scan and substitution on this
// matcher. Zero or negative means no bound. Expiry surfaces as an error
// from the operation that was running when the deadline passed.
func (m *Matcher) SetDeadline(d time.Duration) {
	if d > 0 {
		m.re.MatchTimeout = d
	}
}

// FindAt runs a single scan step over runes starting at pos and returns nil
// when no match exists at or after pos. The returned Index is absolute, not
// relative to pos. pos may equal len(runes) so a zero-length match at
// end-of-text is still observed.
func (m *Matcher) FindAt(runes []rune, pos int) (*Occurrence, error) {
	match, err := m.re.FindRunesMatchStartingAt(runes, pos)
	if err != nil {
		return nil, errors.Errorf("scanning at offset %d: %w", pos, err)
	}
	if match == nil {
		return nil, nil
	}

	return &Occurrence{
		Index:  match.Index,
		Length: match.Length,
		Text:   match.String(),
	}, nil
}

// ReplaceAll substitutes template for every match in text
func (m *Matcher) ReplaceAll(text, template string) (string, error) {
	out, err := m.re.Replace(text, template, -1, -1)
	if err != nil {
		return "", errors.Errorf("substituting template: %w", err)
	}
	return out, nil
}

// ReplaceFirst substitutes template for the first match only. This is the
// single-shot form used to resolve what one isolated match expands to.
func (m *Matcher) ReplaceFirst(text, template string) (string, error) {
	out, err := m.re.Replace(text, template, -1, 1)
	if err != nil {
		return "", errors.Errorf("substituting template: %w", err)
	}
	return out, nil
}

// Replace substitutes template for the first match, or for every match when
// the g flag was present at compile time
func (m *Matcher) Replace(text, template string) (string, error) {
	if m.global {
		return m.ReplaceAll(text, template)
	}
	return m.ReplaceFirst(text, template)
}
