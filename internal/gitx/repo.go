package gitx

import (
	"context"
	"errors"
	"strings"
)

// EnsureRepo verifies the working directory is inside a git work tree.
// Commands call this before anything else so the user gets one clear error
// instead of a raw git failure mid-flow.
func EnsureRepo(ctx context.Context) error {
	out, err := run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil || strings.TrimSpace(out) != "true" {
		return errors.New("not inside a git repository")
	}
	return nil
}
