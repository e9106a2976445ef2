package github

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bruno-garcia/pi-pr-status/internal/git"
	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

// threadQuery fetches up to 100 review threads for a PR. 100 is the API's
// page maximum; PRs with more unresolved threads than that have bigger
// problems than an undercount.
const threadQuery = `query($owner: String!, $name: String!, $number: Int!) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $number) {
      reviewThreads(first: 100) { nodes { isResolved } }
    }
  }
}`

const prFields = "number,title,url,state,statusCheckRollup"

// Client queries pull-request state through the gh CLI. Every operation is
// silent-failure: auth problems, network errors, timeouts and malformed
// output all come back as ok=false, never as an error. Failures are logged
// at debug level only — the next poll retries naturally.
type Client struct {
	runner  Runner
	timeout time.Duration
	log     *slog.Logger
}

// NewClient returns a gh-backed client. timeout bounds each gh invocation.
func NewClient(timeout time.Duration, log *slog.Logger) *Client {
	return &Client{runner: execRunner{}, timeout: timeout, log: log}
}

// NewClientWithRunner is the test seam.
func NewClientWithRunner(r Runner, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{runner: r, timeout: timeout, log: log}
}

// ghPR mirrors the fields we care about from gh's JSON output.
type ghPR struct {
	Number            int         `json:"number"`
	Title             string      `json:"title"`
	URL               string      `json:"url"`
	State             string      `json:"state"` // "OPEN", "MERGED", "CLOSED"
	StatusCheckRollup []CheckNode `json:"statusCheckRollup"`
}

// CurrentBranch resolves the branch checked out in dir.
func (c *Client) CurrentBranch(ctx context.Context, dir string) (string, bool) {
	return git.CurrentBranch(ctx, dir)
}

// ResolveRepo returns the owner/name pair for the repository at dir.
func (c *Client) ResolveRepo(ctx context.Context, dir string) (model.Repo, bool) {
	out, ok := c.run(ctx, dir, "gh", "repo", "view", "--json", "owner,name")
	if !ok {
		return model.Repo{}, false
	}

	var v struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(out, &v); err != nil || v.Owner.Login == "" || v.Name == "" {
		return model.Repo{}, false
	}
	return model.Repo{Owner: v.Owner.Login, Name: v.Name}, true
}

// PRForBranch returns the PR associated with the branch checked out in dir,
// or ok=false when none exists or the backend is unreachable. When repo is
// known the unresolved review-thread count is fetched too; that secondary
// query failing degrades to a zero count rather than losing the PR.
func (c *Client) PRForBranch(ctx context.Context, dir string, repo *model.Repo) (*model.PullRequest, bool) {
	pr, ok := c.viewPR(ctx, dir, "gh", "pr", "view", "--json", prFields)
	if !ok {
		return nil, false
	}
	if repo != nil {
		pr.UnresolvedThreads = c.unresolvedCount(ctx, dir, repo.Owner, repo.Name, pr.Number)
	}
	return pr, true
}

// PRByNumber returns the PR identified by an explicit "owner/name" and
// number, independent of any working directory.
func (c *Client) PRByNumber(ctx context.Context, repoRef string, number int) (*model.PullRequest, bool) {
	pr, ok := c.viewPR(ctx, "",
		"gh", "pr", "view", strconv.Itoa(number), "--repo", repoRef, "--json", prFields)
	if !ok {
		return nil, false
	}
	if owner, name, found := strings.Cut(repoRef, "/"); found {
		pr.UnresolvedThreads = c.unresolvedCount(ctx, "", owner, name, number)
	}
	return pr, true
}

func (c *Client) viewPR(ctx context.Context, dir string, name string, args ...string) (*model.PullRequest, bool) {
	out, ok := c.run(ctx, dir, name, args...)
	if !ok {
		return nil, false
	}

	var raw ghPR
	if err := json.Unmarshal(out, &raw); err != nil {
		c.log.Debug("unparseable gh pr view output", slog.String("error", err.Error()))
		return nil, false
	}
	if raw.Number <= 0 || raw.URL == "" {
		return nil, false
	}

	return &model.PullRequest{
		Number: raw.Number,
		Title:  raw.Title,
		URL:    raw.URL,
		State:  raw.State,
		Checks: AggregateChecks(raw.StatusCheckRollup),
	}, true
}

// unresolvedCount queries review threads via the GraphQL API. Returns 0 on
// any failure — a missing thread count never sinks the primary result.
func (c *Client) unresolvedCount(ctx context.Context, dir, owner, name string, number int) int {
	out, ok := c.run(ctx, dir,
		"gh", "api", "graphql",
		"-f", "query="+threadQuery,
		"-F", "owner="+owner,
		"-F", "name="+name,
		"-F", "number="+strconv.Itoa(number),
	)
	if !ok {
		return 0
	}

	var v struct {
		Data struct {
			Repository struct {
				PullRequest struct {
					ReviewThreads struct {
						Nodes []ReviewThread `json:"nodes"`
					} `json:"reviewThreads"`
				} `json:"pullRequest"`
			} `json:"repository"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &v); err != nil {
		c.log.Debug("unparseable review thread response", slog.String("error", err.Error()))
		return 0
	}
	return CountUnresolved(v.Data.Repository.PullRequest.ReviewThreads.Nodes)
}

func (c *Client) run(ctx context.Context, dir, name string, args ...string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.runner.Run(ctx, dir, name, args...)
	if err != nil {
		c.log.Debug("backend call failed",
			slog.String("cmd", name+" "+strings.Join(args, " ")),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return out, true
}
