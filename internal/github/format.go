package github

import (
	"fmt"
	"strings"

	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

const segmentSep = " · "

// FormatStatus renders a PR as a single status line. Segment order is
// fixed: state marker and number, at most one checks segment, unresolved
// comment count, URL. A failing check wins over pending ones.
func FormatStatus(pr *model.PullRequest) string {
	segments := []string{fmt.Sprintf("%s PR #%d", stateMarker(pr.State), pr.Number)}

	if c := pr.Checks; c.Total > 0 {
		switch {
		case c.Fail > 0:
			segments = append(segments, fmt.Sprintf("❌ %d/%d checks failed", c.Fail, c.Total))
		case c.Pending > 0:
			segments = append(segments, fmt.Sprintf("⏳ %d/%d checks pending", c.Pending, c.Total))
		default:
			segments = append(segments, fmt.Sprintf("✅ %d checks passed", c.Total))
		}
	}

	if pr.UnresolvedThreads > 0 {
		segments = append(segments, fmt.Sprintf("💬 %d unresolved", pr.UnresolvedThreads))
	}

	segments = append(segments, pr.URL)
	return strings.Join(segments, segmentSep)
}

func stateMarker(state string) string {
	switch state {
	case model.StateMerged:
		return "🟣"
	case model.StateClosed:
		return "🔴"
	default:
		return "🟢"
	}
}
