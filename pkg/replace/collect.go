package replace

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// Collect scans text for every non-overlapping match of expr, left to
// right. The scan is always global no matter what flags say; g only decides
// how Execute applies the substitution. Each record's Substituted value is
// recomputed independently by running the same pattern single-shot against
// the isolated matched text, so capture groups resolve against that match
// alone instead of being sliced out of the aggregate output.
func Collect(ctx context.Context, text, expr, template, flags string) ([]Match, error) {
	return CollectWith(ctx, text, expr, template, flags, Options{})
}

// CollectWith is Collect with call options
func CollectWith(ctx context.Context, text, expr, template, flags string, opts Options) ([]Match, error) {
	m, err := pattern.Compile(expr, flags)
	if err != nil {
		return nil, err
	}
	m.SetDeadline(opts.Deadline)

	tmpl := translateEscapes(template)
	runes := []rune(text)
	matches := []Match{}

	pos := 0
	for pos <= len(runes) {
		occ, err := m.FindAt(runes, pos)
		if err != nil {
			return nil, err
		}
		if occ == nil {
			break
		}

		sub, err := m.ReplaceFirst(occ.Text, tmpl)
		if err != nil {
			return nil, errors.Errorf("resolving match at offset %d: %w", occ.Index, err)
		}

		matches = append(matches, Match{
			Index:       occ.Index,
			Length:      occ.Length,
			Text:        occ.Text,
			Substituted: sub,
		})

		// A zero-length match leaves the scan exactly where it was found.
		// Force the cursor one rune forward so the loop terminates and
		// end-of-text is still visited.
		if occ.Length == 0 {
			pos = occ.Index + 1
		} else {
			pos = occ.Index + occ.Length
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", expr).
		Int("match_count", len(matches)).
		Msg("collected matches")

	return matches, nil
}
