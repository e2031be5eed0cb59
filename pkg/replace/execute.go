package replace

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/resub/pkg/pattern"
)

// escapeTokens rewrites the escape sequences callers type into replacement
// templates as literal control characters. Translation happens before the
// evaluator sees the template, so $-token processing operates on the final
// text and the per-match resolutions in Collect agree with Execute output.
var escapeTokens = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r")

func translateEscapes(template string) string {
	return escapeTokens.Replace(template)
}

// Execute produces the fully substituted text, honoring the caller's flags
// verbatim: with g every match is replaced, without it only the first. On
// failure no partial text is returned.
func Execute(ctx context.Context, text, expr, template, flags string) (string, error) {
	return ExecuteWith(ctx, text, expr, template, flags, Options{})
}

// ExecuteWith is Execute with call options
func ExecuteWith(ctx context.Context, text, expr, template, flags string, opts Options) (string, error) {
	m, err := pattern.Compile(expr, flags)
	if err != nil {
		return "", err
	}
	m.SetDeadline(opts.Deadline)

	out, err := m.Replace(text, translateEscapes(template))
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", expr).
		Str("flags", flags).
		Bool("global", m.Global()).
		Msg("executed replacement")

	return out, nil
}
