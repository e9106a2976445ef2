package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DetachedHead is what rev-parse prints for a detached checkout. Callers
// treat it the same as "no branch".
const DetachedHead = "HEAD"

// Branch resolution is local-only, so it gets a much tighter bound than
// the network-backed gh calls.
const branchTimeout = 2 * time.Second

// CurrentBranch returns the branch checked out in dir. ok is false when dir
// is not a repository, git is unavailable, or the call times out.
func CurrentBranch(ctx context.Context, dir string) (branch string, ok bool) {
	ctx, cancel := context.WithTimeout(ctx, branchTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx,
		"git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD",
	).Output()
	if err != nil {
		return "", false
	}
	branch = strings.TrimSpace(string(out))
	if branch == "" {
		return "", false
	}
	return branch, true
}

// RepoRoot returns the absolute path of the repository root containing dir.
func RepoRoot(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
