package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bruno-garcia/pi-pr-status/internal/config"
	"github.com/bruno-garcia/pi-pr-status/internal/git"
	"github.com/bruno-garcia/pi-pr-status/internal/github"
	"github.com/bruno-garcia/pi-pr-status/internal/logger"
	"github.com/bruno-garcia/pi-pr-status/internal/status"
	"github.com/bruno-garcia/pi-pr-status/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if root, err := git.RepoRoot(dir); err == nil {
		dir = root
	}

	client := github.NewClient(cfg.GHTimeout, log)
	bar := tui.NewBar()
	tracker := status.NewTracker(client, bar, cfg.Host, cfg.StatusKey, dir, log)

	log.Info("starting", "dir", dir, "interval", cfg.PollInterval.String())

	p := tea.NewProgram(tui.New(tracker, bar, cfg.StatusKey, dir, cfg.PollInterval))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
