package github

import (
	"strings"

	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

// CheckNode mirrors one entry of gh's statusCheckRollup JSON.
type CheckNode struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
}

// ReviewThread mirrors one reviewThreads node from the GraphQL API.
type ReviewThread struct {
	IsResolved bool `json:"isResolved"`
}

// AggregateChecks buckets raw check records into a tally. Records with no
// name, no conclusion and no status carry no signal and are skipped without
// counting. A recognised conclusion decides pass/fail outright; otherwise
// the status decides, and anything unrecognised counts as pending — an
// ambiguous check is still in flight, not silently dropped. The one
// exception is COMPLETED with no recognised conclusion, which counts as
// pass.
func AggregateChecks(checks []CheckNode) model.CheckTally {
	var t model.CheckTally
	for _, c := range checks {
		if c.Name == "" && c.Conclusion == "" && c.Status == "" {
			continue
		}
		t.Total++

		switch strings.ToUpper(c.Conclusion) {
		case "SUCCESS", "NEUTRAL", "SKIPPED":
			t.Pass++
			continue
		case "FAILURE", "TIMED_OUT", "CANCELLED", "ACTION_REQUIRED":
			t.Fail++
			continue
		}

		switch strings.ToUpper(c.Status) {
		case "IN_PROGRESS", "QUEUED", "PENDING", "WAITING":
			t.Pending++
		case "COMPLETED":
			t.Pass++
		default:
			t.Pending++
		}
	}
	return t
}

// CountUnresolved returns how many review threads are still open.
func CountUnresolved(threads []ReviewThread) int {
	n := 0
	for _, t := range threads {
		if !t.IsResolved {
			n++
		}
	}
	return n
}
