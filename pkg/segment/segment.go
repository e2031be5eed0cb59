// Package segment reconstructs highlighted before/after views from a match
// list. Nothing here evaluates a regex: the builders are purely positional,
// slicing the original text around the recorded match offsets.
package segment

import (
	"github.com/walteh/resub/pkg/replace"
)

// Kind labels what a segment's text is
type Kind int

const (
	// Literal is a span of original text no match touched
	Literal Kind = iota

	// Marked is a span belonging to a match: the matched text in the
	// original view, the substituted text in the replacement view
	Marked
)

// Segment is one contiguous labeled span of a rendered view
type Segment struct {
	Kind Kind
	Text string
}

// Original builds the view of the input text with every matched span
// marked. Concatenating the segment texts reproduces text exactly. The
// match list must be ordered and non-overlapping, as produced by the
// engine's scan; offsets count runes.
func Original(text string, matches []replace.Match) []Segment {
	return build(text, matches, false)
}

// Replaced builds the view of the output text: literal spans are shared
// with the original view and marked spans carry each match's substituted
// text. For matches from a global scan, concatenating the segment texts
// reproduces the full Execute output, except when the pattern's resolution
// depends on context outside the matched text itself.
func Replaced(text string, matches []replace.Match) []Segment {
	return build(text, matches, true)
}

func build(text string, matches []replace.Match, substituted bool) []Segment {
	runes := []rune(text)
	segs := []Segment{}

	last := 0
	for _, m := range matches {
		if m.Index > last {
			segs = append(segs, Segment{Kind: Literal, Text: string(runes[last:m.Index])})
		}

		marked := string(runes[m.Index : m.Index+m.Length])
		if substituted {
			marked = m.Substituted
		}
		segs = append(segs, Segment{Kind: Marked, Text: marked})

		last = m.Index + m.Length
	}

	if last < len(runes) {
		segs = append(segs, Segment{Kind: Literal, Text: string(runes[last:])})
	}

	return segs
}

// Clip truncates a view to at most max runes of text, reporting whether
// anything was cut. max <= 0 means unlimited. Ordering and the
// literal/marked labeling survive clipping; rendering the truncation
// indicator is the caller's job.
func Clip(segs []Segment, max int) ([]Segment, bool) {
	if max <= 0 {
		return segs, false
	}

	out := []Segment{}
	budget := max

	for _, s := range segs {
		runes := []rune(s.Text)
		if len(runes) <= budget {
			out = append(out, s)
			budget -= len(runes)
			continue
		}

		if budget > 0 {
			out = append(out, Segment{Kind: s.Kind, Text: string(runes[:budget])})
		}
		return out, true
	}

	return out, false
}
