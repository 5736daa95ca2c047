package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/alnah/go-docmark/internal/config"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "DOCMARK"

// ErrEnvConfig reports a DOCMARK_* variable whose value cannot be parsed.
var ErrEnvConfig = errors.New("invalid environment configuration")

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string `envconfig:"CONFIG" desc:"config file name or path"`
	RewriteBase    string `envconfig:"REWRITE_BASE" desc:"base URL prepended to relative links and images"`
	HighlightStyle string `envconfig:"HIGHLIGHT_STYLE" desc:"chroma style for fenced code"`
	NoHighlight    bool   `envconfig:"NO_HIGHLIGHT" desc:"render fenced code without highlighting"`
	AssetPath      string `envconfig:"ASSET_PATH" desc:"directory overriding icons and styles"`
	OutputDir      string `envconfig:"OUTPUT_DIR" desc:"default build output directory"`
	Workers        int    `envconfig:"WORKERS" desc:"parallel build workers (0 = auto)"`
}

// knownEnvVars lists valid DOCMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCMARK_CONFIG":          true,
	"DOCMARK_REWRITE_BASE":    true,
	"DOCMARK_HIGHLIGHT_STYLE": true,
	"DOCMARK_NO_HIGHLIGHT":    true,
	"DOCMARK_ASSET_PATH":      true,
	"DOCMARK_OUTPUT_DIR":      true,
	"DOCMARK_WORKERS":         true,
}

// loadEnvConfig reads configuration from DOCMARK_* environment variables.
func loadEnvConfig() (*envConfig, error) {
	var cfg envConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return &cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized DOCMARK_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix+"_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies set environment values over the config file.
// CLI flags are applied afterwards, giving flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.RewriteBase != "" {
		cfg.Render.RewriteBase = env.RewriteBase
	}
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
	}
	if env.NoHighlight {
		cfg.Highlight.Disabled = true
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Output.Workers = env.Workers
	}
}

// printEnvUsage lists the recognized variables with their types.
func printEnvUsage(w io.Writer) error {
	return envconfig.Usagef(envPrefix, &envConfig{}, w, envconfig.DefaultTableFormat)
}
