package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nxtgenhub/lead-relay/internal/leadclient"
)

// fileConfig is the optional TOML file passed with -config.
type fileConfig struct {
	// BackendURL is the relay API base, like http://localhost:3001/api
	BackendURL string `toml:"backend_url"`
	// Timeout bounds one submit, as a Go duration string.
	Timeout string           `toml:"timeout"`
	Brand   leadclient.Brand `toml:"brand"`
}

func readConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	return &cfg, nil
}
