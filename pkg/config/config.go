// Package config loads the ezy toggle configuration from the environment.
// A .env file in the working directory is honored first, then the process
// environment; command-line flags override both at the cmd layer.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by ezy.
const (
	EnvIncludeDocs          = "EZY_INCLUDE_DOCS"
	EnvIncludeTests         = "EZY_INCLUDE_TESTS"
	EnvIncludeArtProcessing = "EZY_INCLUDE_ART_PROCESSING"
	EnvListOnly             = "EZY_LIST_ONLY"
	EnvOutputDir            = "EZY_OUTPUT_DIR"
	EnvDebug                = "EZY_DEBUG"
)

// Config holds the environment-derived settings for a run. All toggles
// default to false; OutputDir defaults to "stacks".
type Config struct {
	IncludeDocs          bool
	IncludeTests         bool
	IncludeArtProcessing bool
	ListOnly             bool
	OutputDir            string
}

// Load reads the .env file (if present) and the process environment.
// Toggle values must be "true" or "false", matched case-insensitively;
// anything else is a configuration error rather than a silent default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{OutputDir: "stacks"}
	if dir := strings.TrimSpace(os.Getenv(EnvOutputDir)); dir != "" {
		cfg.OutputDir = dir
	}

	toggles := []struct {
		name string
		dst  *bool
	}{
		{EnvIncludeDocs, &cfg.IncludeDocs},
		{EnvIncludeTests, &cfg.IncludeTests},
		{EnvIncludeArtProcessing, &cfg.IncludeArtProcessing},
		{EnvListOnly, &cfg.ListOnly},
	}
	for _, t := range toggles {
		v, err := parseToggle(t.name, os.Getenv(t.name))
		if err != nil {
			return nil, err
		}
		*t.dst = v
	}
	return cfg, nil
}

// DebugEnabled reports whether EZY_DEBUG is set to true. It is checked
// before Load so the logger can be configured first; an unparseable value
// here just means production logging.
func DebugEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(EnvDebug)), "true")
}

func parseToggle(name, raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return false, nil
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("invalid value for %s: %q (expected true or false)", name, raw)
	}
}
