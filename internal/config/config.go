package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendMemory = "memory"
)

// Config holds the resolved runtime settings.
type Config struct {
	Backend  string
	DBPath   string
	BlobDir  string
	LogCalls bool
	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads settings from TALLY_* environment variables and an optional
// .tally.yaml found in $TALLY_CONFIG_PATH, the working directory or $HOME.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("db", "~/.tally/tally.db")
	v.SetDefault("dir", "~/.tally/blobs")
	v.SetDefault("log_calls", false)

	v.SetConfigName(".tally") // .yaml is implicit
	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()

	if override := os.Getenv("TALLY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		LogCalls: v.GetBool("log_calls"),
		File:     v.ConfigFileUsed(),
	}
	switch cfg.Backend {
	case BackendSQLite, BackendDiskv, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown backend %q (expected sqlite, diskv or memory)", cfg.Backend)
	}

	var err error
	if cfg.DBPath, err = homedir.Expand(v.GetString("db")); err != nil {
		return nil, fmt.Errorf("expanding db path: %w", err)
	}
	if cfg.BlobDir, err = homedir.Expand(v.GetString("dir")); err != nil {
		return nil, fmt.Errorf("expanding blob dir: %w", err)
	}
	return cfg, nil
}
