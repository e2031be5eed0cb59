package commands

import (
	"context"

	"github.com/walteh/resub/pkg/source"
)

// readTarget resolves the command target and reads all of its content.
// With no argument the target is stdin.
func readTarget(ctx context.Context, args []string, fromGitHub bool) (string, error) {
	target := "-"
	if len(args) == 1 {
		target = args[0]
	}

	src, err := source.Resolve(ctx, target, fromGitHub)
	if err != nil {
		return "", err
	}

	return src.Read(ctx)
}
