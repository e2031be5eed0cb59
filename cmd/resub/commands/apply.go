package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/resub/cmd/resub/opts"
	"github.com/walteh/resub/pkg/apply"
	"github.com/walteh/resub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		pattern     string
		replacement string
		flags       string
		dryRun      bool
		jobs        int
	)

	cmd := &cobra.Command{
		Use:   "apply [paths...]",
		Short: "Apply a rule set to one or more directory trees",
		Long: `Apply loads a rule set (or builds one from -p/-r/-f) and rewrites
every selected file under the given roots. With no paths it runs in
the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			cfg, err := ruleSetFor(ctx, opts.ConfigPath, pattern, replacement, flags)
			if err != nil {
				return err
			}

			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			user := apply.NewUserLogger(ctx, dryRun)
			failed := 0
			for _, root := range roots {
				applier, err := apply.New(cfg, apply.Options{
					Root:   root,
					DryRun: dryRun,
					Jobs:   jobs,
					User:   user,
				})
				if err != nil {
					return errors.Errorf("creating applier for %s: %w", root, err)
				}

				summary, err := applier.Run(ctx)
				if err != nil {
					return errors.Errorf("applying rules to %s: %w", root, err)
				}
				failed += summary.Errors
			}

			if failed > 0 {
				return errors.Errorf("%d files failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression to search for")
	cmd.Flags().StringVarP(&replacement, "replacement", "r", "", "replacement template")
	cmd.Flags().StringVarP(&flags, "flags", "f", "g", "match flags (g, i, m, s, u)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "concurrent file workers, defaults to the CPU count")

	return cmd
}

// ruleSetFor builds the rule set a run uses, either inline from -p/-r/-f
// or from the configured rule set file
func ruleSetFor(ctx context.Context, configPath, pattern, replacement, flags string) (*config.RuleSet, error) {
	if pattern != "" {
		return &config.RuleSet{
			Rules: []config.Rule{{Find: pattern, Replace: replacement, Flags: flags}},
		}, nil
	}

	cfg, err := config.LoadRuleSet(ctx, configPath)
	if err != nil {
		return nil, errors.Errorf("loading rule set: %w", err)
	}
	return cfg, nil
}
