// Package gh shells out to the GitHub CLI for the operations that need a
// forge, not just a repository.
package gh

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CreatePR opens a pull request for the current branch and returns the URL gh
// prints. Title and body are passed through verbatim.
func CreatePR(ctx context.Context, title, body, base string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", "pr", "create",
		"--title", title,
		"--body", body,
		"--base", base,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gh pr create failed: %v\n%s", err, stderr.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}
