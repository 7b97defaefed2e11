package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// run executes git in the current working directory and returns its stdout.
// Failures carry git's stderr so the user sees what git said, not just the
// exit status.
func run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %v failed: %v\n%s", args, err, stderr.String())
	}
	return stdout.String(), nil
}

// StagedDiff returns the unified diff of the staged changes, verbatim.
func StagedDiff(ctx context.Context) (string, error) {
	return run(ctx, "diff", "--cached")
}

// BranchDiff returns the diff between base and HEAD.
func BranchDiff(ctx context.Context, base string) (string, error) {
	return run(ctx, "diff", base+"..HEAD")
}

// Commit records the staged changes under the given message.
func Commit(ctx context.Context, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	_, err := run(ctx, "commit", "-m", msg)
	return err
}

// HasUpstream reports whether the current branch tracks a remote branch.
func HasUpstream(ctx context.Context) bool {
	_, err := run(ctx, "rev-parse", "--abbrev-ref", "@{u}")
	return err == nil
}

// Push publishes the current branch and sets its upstream.
func Push(ctx context.Context) error {
	_, err := run(ctx, "push", "-u", "origin", "HEAD")
	return err
}
