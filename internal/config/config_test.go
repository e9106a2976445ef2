package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, 30*time.Second, cfg.PollInterval)
	require.Equal(t, 10*time.Second, cfg.GHTimeout)
	require.Equal(t, "github.com", cfg.Host)
	require.Equal(t, "pr-status", cfg.StatusKey)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := "env: dev\npoll_interval: 5s\nhost: git.corp.example\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
	require.Equal(t, "git.corp.example", cfg.Host)
	require.Equal(t, 10*time.Second, cfg.GHTimeout, "untouched keys keep defaults")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{:::"), 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
}
