// Package status decides which pull request a session is "about" and keeps
// a status-bar slot updated with its formatted state.
package status

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bruno-garcia/pi-pr-status/internal/git"
	"github.com/bruno-garcia/pi-pr-status/internal/github"
	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

// Origin tags where an input event came from. Internally synthesized input
// must not move the selection.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginHook      Origin = "hook"
	OriginSynthetic Origin = "synthetic"
)

// Backend is the query surface the tracker polls. Implementations never
// return errors; ok=false means "no data right now".
type Backend interface {
	CurrentBranch(ctx context.Context, dir string) (string, bool)
	ResolveRepo(ctx context.Context, dir string) (model.Repo, bool)
	PRForBranch(ctx context.Context, dir string, repo *model.Repo) (*model.PullRequest, bool)
	PRByNumber(ctx context.Context, repoRef string, number int) (*model.PullRequest, bool)
}

// Sink is the host's status-bar slot. A nil text clears the entry.
type Sink interface {
	SetStatus(key string, text *string)
}

// Tracker owns the per-session selection state: the branch last seen, the
// PR last displayed, an optional URL pin, and the cached repository
// coordinates. One tracker serves one session; Reset re-targets it.
type Tracker struct {
	backend Backend
	sink    Sink
	parser  *github.URLParser
	log     *slog.Logger
	key     string

	mu         sync.Mutex
	dir        string
	repo       *model.Repo
	lastBranch string
	lastPR     *model.PullRequest
	pin        *model.PinRef
}

// NewTracker builds a tracker for the session rooted at dir. key is the
// stable status-bar slot it writes to; host scopes URL recognition.
func NewTracker(backend Backend, sink Sink, host, key, dir string, log *slog.Logger) *Tracker {
	return &Tracker{
		backend: backend,
		sink:    sink,
		parser:  github.NewURLParser(host),
		log:     log,
		key:     key,
		dir:     dir,
	}
}

// Tick runs one poll: refresh whichever PR is active and push the result to
// the sink. Safe to call from a timer loop; calls are serialized.
func (t *Tracker) Tick(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tick(ctx)
}

func (t *Tracker) tick(ctx context.Context) {
	branch, branchOK := t.backend.CurrentBranch(ctx, t.dir)
	if branchOK && branch != t.lastBranch {
		// Branch moved under us; whatever PR we were showing is stale.
		t.lastPR = nil
		t.lastBranch = branch
	}

	if t.pin != nil {
		t.tickPinned(ctx, branch, branchOK)
		return
	}

	if !branchOK || branch == git.DetachedHead {
		t.lastPR = nil
		t.clear()
		return
	}

	if t.repo == nil {
		if repo, ok := t.backend.ResolveRepo(ctx, t.dir); ok {
			t.repo = &repo
		}
	}

	pr, ok := t.backend.PRForBranch(ctx, t.dir, t.repo)
	if !ok {
		t.lastPR = nil
		t.clear()
		return
	}
	t.lastPR = pr
	t.show(pr)
}

// tickPinned refreshes a pinned PR. The pin is dropped the moment the
// current branch has an open PR of its own — branch detection reclaims
// priority so a stale pin cannot outlive its purpose.
func (t *Tracker) tickPinned(ctx context.Context, branch string, branchOK bool) {
	pr, ok := t.backend.PRByNumber(ctx, t.pin.Repo, t.pin.Number)
	if !ok {
		// Transient failure: keep the pin for the next poll, show nothing.
		t.clear()
		return
	}

	if branchOK && branch != git.DetachedHead {
		if branchPR, ok := t.backend.PRForBranch(ctx, t.dir, t.repo); ok && branchPR.State == model.StateOpen {
			t.log.Debug("dropping pin, branch has its own open PR",
				slog.Int("pinned", t.pin.Number),
				slog.Int("branch_pr", branchPR.Number),
			)
			t.pin = nil
			t.lastPR = branchPR
			t.show(branchPR)
			return
		}
	}

	t.lastPR = pr
	t.show(pr)
}

// HandleInput scans free text for a PR URL and pins it. A mention is
// ignored when it is synthetic, when it repeats the current pin, or when
// the branch's own open PR is already on display — an incidental link must
// not hijack an in-progress branch.
func (t *Tracker) HandleInput(ctx context.Context, text string, origin Origin) {
	if origin == OriginSynthetic {
		return
	}
	ref, ok := t.parser.Parse(text)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pin != nil && *t.pin == ref {
		return
	}
	if t.pin == nil && t.lastPR != nil && t.lastPR.State == model.StateOpen {
		return
	}

	t.log.Debug("pinning PR from input",
		slog.String("repo", ref.Repo),
		slog.Int("number", ref.Number),
	)
	t.pin = &ref

	pr, ok := t.backend.PRByNumber(ctx, ref.Repo, ref.Number)
	if !ok {
		t.clear()
		return
	}
	t.lastPR = pr
	t.show(pr)
}

// Reset re-targets the tracker at a new session directory: all state
// including the cached repository coordinates is dropped, then one poll
// runs immediately for the new directory.
func (t *Tracker) Reset(ctx context.Context, dir string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dir = dir
	t.repo = nil
	t.lastBranch = ""
	t.lastPR = nil
	t.pin = nil
	t.tick(ctx)
}

func (t *Tracker) show(pr *model.PullRequest) {
	line := github.FormatStatus(pr)
	t.sink.SetStatus(t.key, &line)
}

func (t *Tracker) clear() {
	t.sink.SetStatus(t.key, nil)
}
