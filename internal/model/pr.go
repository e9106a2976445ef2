package model

// PR state strings as reported by the hosting backend.
const (
	StateOpen   = "OPEN"
	StateMerged = "MERGED"
	StateClosed = "CLOSED"
)

// CheckTally buckets a PR's CI checks. Every counted check lands in exactly
// one of Pass/Fail/Pending, so Pass+Fail+Pending == Total.
type CheckTally struct {
	Total   int
	Pass    int
	Fail    int
	Pending int
}

// PullRequest is a point-in-time snapshot of a pull request. Polls never
// mutate an existing value; each query produces a fresh one.
type PullRequest struct {
	Number            int
	Title             string
	URL               string
	State             string // StateOpen, StateMerged or StateClosed
	Checks            CheckTally
	UnresolvedThreads int
}

// Repo identifies the hosting repository backing a working directory.
type Repo struct {
	Owner string
	Name  string
}

// Ref returns the "owner/name" form used to scope backend queries.
func (r Repo) Ref() string { return r.Owner + "/" + r.Name }

// PinRef points at an explicitly mentioned pull request, independent of
// whatever branch is checked out.
type PinRef struct {
	Repo   string // "owner/name"
	Number int
}
