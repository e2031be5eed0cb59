package opts

import "io"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigPath string    // rule set file the apply command loads
	Stdout     io.Writer // render destination, os.Stdout outside of tests
}
