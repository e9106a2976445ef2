package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	PollInterval time.Duration
	GHTimeout    time.Duration
	Host         string
	StatusKey    string
}

// Load reads an optional config.yaml next to the binary and falls back to
// defaults for everything else. A missing file is fine; a malformed one is
// not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("env", "prod")
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("gh_timeout", "10s")
	v.SetDefault("host", "github.com")
	v.SetDefault("status_key", "pr-status")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Env:          v.GetString("env"),
		PollInterval: v.GetDuration("poll_interval"),
		GHTimeout:    v.GetDuration("gh_timeout"),
		Host:         v.GetString("host"),
		StatusKey:    v.GetString("status_key"),
	}, nil
}
