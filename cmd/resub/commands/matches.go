package commands

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/resub/cmd/resub/opts"
	"github.com/walteh/resub/pkg/render"
	"github.com/walteh/resub/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// NewMatchesCmd creates a new matches command
func NewMatchesCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		pattern     string
		replacement string
		flags       string
		maxWidth    int
		timeout     time.Duration
		fromGitHub  bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "matches [file]",
		Short: "List every match a pattern finds in the target",
		Long: `Matches scans the whole target and prints one row per match,
including the substitution each match would produce.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "matches").Logger().WithContext(ctx)

			text, err := readTarget(ctx, args, fromGitHub)
			if err != nil {
				return err
			}

			result, err := replace.PreviewWith(ctx, text, pattern, replacement, flags, replace.Options{
				Deadline: timeout,
			})
			if err != nil {
				return errors.Errorf("collecting matches: %w", err)
			}

			renderMode := render.ModeTable
			if asJSON {
				renderMode = render.ModeJSON
			}

			return render.New(opts.Stdout, renderMode, maxWidth).Render(ctx, result)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression to search for")
	cmd.Flags().StringVarP(&replacement, "replacement", "r", "", "replacement template")
	cmd.Flags().StringVarP(&flags, "flags", "f", "g", "match flags (g, i, m, s, u)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "clip table cells to this many characters")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-call evaluator deadline")
	cmd.Flags().BoolVar(&fromGitHub, "github", false, "treat the target as owner/repo[@ref]:path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw match records as JSON")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
