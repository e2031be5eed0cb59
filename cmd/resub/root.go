package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/resub/cmd/resub/opts"
)

var (
	// Flags
	configFile string
	debugFlag  bool // named to avoid colliding with the runtime/debug import
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts() *opts.RootOpts {
	return &opts.RootOpts{
		ConfigPath: configFile,
		Stdout:     os.Stdout,
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".resub", "rule set file path")
	cmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
