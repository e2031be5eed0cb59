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

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		pattern     string
		replacement string
		flags       string
		mode        string
		maxWidth    int
		timeout     time.Duration
		fromGitHub  bool
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview a replacement without writing anything",
		Long: `Preview runs a pattern against a file, a GitHub reference, or stdin
and renders what would change. Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "preview").Logger().WithContext(ctx)

			renderMode, err := render.ParseMode(mode)
			if err != nil {
				return err
			}

			text, err := readTarget(ctx, args, fromGitHub)
			if err != nil {
				return err
			}

			result, err := replace.PreviewWith(ctx, text, pattern, replacement, flags, replace.Options{
				Deadline: timeout,
			})
			if err != nil {
				return errors.Errorf("previewing replacement: %w", err)
			}

			return render.New(opts.Stdout, renderMode, maxWidth).Render(ctx, result)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression to search for")
	cmd.Flags().StringVarP(&replacement, "replacement", "r", "", "replacement template")
	cmd.Flags().StringVarP(&flags, "flags", "f", "g", "match flags (g, i, m, s, u)")
	cmd.Flags().StringVar(&mode, "mode", "views", "output mode (views, diff, table, json)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "clip rendered text to this many characters")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-call evaluator deadline")
	cmd.Flags().BoolVar(&fromGitHub, "github", false, "treat the target as owner/repo[@ref]:path")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
