package github

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

func TestURLParser_Parse(t *testing.T) {
	parser := NewURLParser("github.com")

	tests := []struct {
		name    string
		text    string
		want    model.PinRef
		wantOK  bool
	}{
		{
			name:   "bare URL",
			text:   "https://github.com/owner/repo/pull/42",
			want:   model.PinRef{Repo: "owner/repo", Number: 42},
			wantOK: true,
		},
		{
			name:   "embedded in prose",
			text:   "can you look at https://github.com/owner/repo/pull/42 before lunch?",
			want:   model.PinRef{Repo: "owner/repo", Number: 42},
			wantOK: true,
		},
		{
			name:   "trailing path text after the number",
			text:   "https://github.com/owner/repo/pull/42/files looks odd",
			want:   model.PinRef{Repo: "owner/repo", Number: 42},
			wantOK: true,
		},
		{
			name: "issues link does not match",
			text: "https://github.com/owner/repo/issues/42",
		},
		{
			name: "wrong host does not match",
			text: "https://gitlab.com/owner/repo/pull/42",
		},
		{
			name: "plain text does not match",
			text: "please fix the pull request",
		},
		{
			name: "http scheme does not match",
			text: "http://github.com/owner/repo/pull/42",
		},
		{
			name:   "first of multiple URLs wins",
			text:   "https://github.com/a/b/pull/1 https://github.com/c/d/pull/2",
			want:   model.PinRef{Repo: "a/b", Number: 1},
			wantOK: true,
		},
		{
			name:   "dotted owner and repo segments",
			text:   "https://github.com/some.org/my-repo.go/pull/7",
			want:   model.PinRef{Repo: "some.org/my-repo.go", Number: 7},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.text)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestURLParser_CustomHost(t *testing.T) {
	parser := NewURLParser("git.corp.example")

	ref, ok := parser.Parse("see https://git.corp.example/team/svc/pull/3")
	require.True(t, ok)
	require.Equal(t, model.PinRef{Repo: "team/svc", Number: 3}, ref)

	_, ok = parser.Parse("see https://github.com/team/svc/pull/3")
	require.False(t, ok)
}
