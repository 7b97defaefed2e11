package gitx

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// chdir moves the test into dir and restores the previous working directory
// on cleanup. Stands in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			// It's not safe to continue with other tests if we can't
			// get back to the original working directory.
			panic("chdir cleanup: " + err.Error())
		}
	})
}

// initRepo creates a repository in a temp dir and makes it the working
// directory for the test.
func initRepo(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	chdir(t, dir)
	gitCmd(t, "init", "-q", "-b", "main")
	gitCmd(t, "config", "user.email", "test@example.com")
	gitCmd(t, "config", "user.name", "test")
	gitCmd(t, "config", "commit.gpgsign", "false")
}

func gitCmd(t *testing.T, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStagedDiff(t *testing.T) {
	initRepo(t)
	ctx := context.Background()

	diff, err := StagedDiff(ctx)
	if err != nil {
		t.Fatalf("StagedDiff() error = %v", err)
	}
	if strings.TrimSpace(diff) != "" {
		t.Errorf("StagedDiff() on a clean repo = %q, want empty", diff)
	}

	writeFile(t, "a.txt", "hello\n")
	gitCmd(t, "add", "a.txt")

	diff, err = StagedDiff(ctx)
	if err != nil {
		t.Fatalf("StagedDiff() error = %v", err)
	}
	if !strings.Contains(diff, "+hello") {
		t.Errorf("StagedDiff() = %q, want it to contain +hello", diff)
	}
}

func TestCommit(t *testing.T) {
	initRepo(t)
	ctx := context.Background()

	writeFile(t, "a.txt", "hello\n")
	gitCmd(t, "add", "a.txt")

	if err := Commit(ctx, " feat: add greeting \n"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	subject, err := run(ctx, "log", "-1", "--pretty=%s")
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if got := strings.TrimSpace(subject); got != "feat: add greeting" {
		t.Errorf("commit subject = %q, want %q", got, "feat: add greeting")
	}
}

func TestCommitEmptyMessage(t *testing.T) {
	initRepo(t)

	if err := Commit(context.Background(), "  \n"); err == nil {
		t.Fatal("Commit() accepted a blank message")
	}
}

func TestBranchDiff(t *testing.T) {
	initRepo(t)
	ctx := context.Background()

	writeFile(t, "a.txt", "hello\n")
	gitCmd(t, "add", "a.txt")
	gitCmd(t, "commit", "-q", "-m", "init")

	gitCmd(t, "checkout", "-q", "-b", "feature")
	writeFile(t, "b.txt", "world\n")
	gitCmd(t, "add", "b.txt")
	gitCmd(t, "commit", "-q", "-m", "add b")

	diff, err := BranchDiff(ctx, "main")
	if err != nil {
		t.Fatalf("BranchDiff() error = %v", err)
	}
	if !strings.Contains(diff, "+world") {
		t.Errorf("BranchDiff() = %q, want it to contain +world", diff)
	}
}

func TestHasUpstream(t *testing.T) {
	initRepo(t)

	writeFile(t, "a.txt", "hello\n")
	gitCmd(t, "add", "a.txt")
	gitCmd(t, "commit", "-q", "-m", "init")

	if HasUpstream(context.Background()) {
		t.Error("HasUpstream() = true for a branch with no remote")
	}
}

func TestEnsureRepo(t *testing.T) {
	initRepo(t)
	if err := EnsureRepo(context.Background()); err != nil {
		t.Errorf("EnsureRepo() inside a repo: %v", err)
	}
}

func TestEnsureRepoOutside(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	chdir(t, t.TempDir())
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	if err := EnsureRepo(context.Background()); err == nil {
		t.Error("EnsureRepo() found a repo in a bare temp dir")
	}
}
