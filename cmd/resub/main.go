package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/resub/cmd/resub/commands"
)

func main() {
	// Setup logging
	setupLogging()

	// Create root options
	opts := newRootOpts()

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "resub",
		Short: "Regular expression find and replace for files, trees, and remote content",
		Long: `resub previews and applies regular expression replacements.
It can rewrite a single file, a whole directory tree driven by a rule set,
or content piped through stdin, and it renders previews as aligned views,
diffs, match tables, or JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flag values only exist once parsing is done
			setupLogging()
			opts.ConfigPath = configFile
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewPreviewCmd(opts),
		commands.NewApplyCmd(opts),
		commands.NewMatchesCmd(opts),
		NewVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
