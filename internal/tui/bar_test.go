package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBar_SetStatus(t *testing.T) {
	bar := NewBar()

	_, ok := bar.Line("pr-status")
	require.False(t, ok)

	line := "🟢 PR #1 · https://github.com/o/r/pull/1"
	bar.SetStatus("pr-status", &line)
	got, ok := bar.Line("pr-status")
	require.True(t, ok)
	require.Equal(t, line, got)

	other := "unrelated"
	bar.SetStatus("other", &other)

	// nil clears only the addressed slot.
	bar.SetStatus("pr-status", nil)
	_, ok = bar.Line("pr-status")
	require.False(t, ok)
	got, ok = bar.Line("other")
	require.True(t, ok)
	require.Equal(t, "unrelated", got)
}
