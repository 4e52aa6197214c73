package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/aatuh/jscookie"
)

type fileConfig struct {
	Path        string  `toml:"path"`
	Domain      string  `toml:"domain"`
	ExpiresDays float64 `toml:"expires_days"`
	Secure      bool    `toml:"secure"`
	SameSite    string  `toml:"same_site"`
	Partitioned bool    `toml:"partitioned"`
}

// loadDotenv loads a .env file into the environment. A missing file is not
// an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads the environment and then overlays the keys defined in
// the TOML file at path, if any.
func loadConfig(path string) (jscookie.Config, error) {
	cfg, err := jscookie.LoadConfig()
	if err != nil {
		return jscookie.Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return jscookie.Config{}, fmt.Errorf("load cookie config: %w", err)
	}

	if meta.IsDefined("path") {
		cfg.Path = strings.TrimSpace(raw.Path)
	}
	if meta.IsDefined("domain") {
		cfg.Domain = strings.TrimSpace(raw.Domain)
	}
	if meta.IsDefined("expires_days") {
		cfg.ExpiresDays = raw.ExpiresDays
	}
	if meta.IsDefined("secure") {
		cfg.Secure = raw.Secure
	}
	if meta.IsDefined("same_site") {
		cfg.SameSite = strings.TrimSpace(raw.SameSite)
	}
	if meta.IsDefined("partitioned") {
		cfg.Partitioned = raw.Partitioned
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return jscookie.Config{}, fmt.Errorf("load cookie config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}
