package main

import (
	"errors"
	"fmt"
	"net/url"

	docmark "github.com/alnah/go-docmark"
	"github.com/alnah/go-docmark/internal/config"
	"github.com/alnah/go-docmark/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidBaseURL = errors.New("invalid rewrite base URL")
	ErrFrontMatter    = errors.New("failed to parse front matter")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultOutputDir is used by build when neither flag nor config names one.
const defaultOutputDir = "docs"

// loadSettings resolves the effective configuration.
// Priority: flags > DOCMARK_* env > config file > defaults. The config file
// comes from --config, then DOCMARK_CONFIG.
func loadSettings(configFlag string, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeStyleFlags applies explicitly set style flags to cfg.
func mergeStyleFlags(f styleFlags, cfg *config.Config) {
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.highlightStyle != "" {
		cfg.Highlight.Style = f.highlightStyle
	}
	if f.noHighlight {
		cfg.Highlight.Disabled = true
	}
}

// mergeTOCFlags applies explicitly set TOC flags to cfg.
func mergeTOCFlags(f tocFlags, cfg *config.Config) {
	if f.enabled {
		cfg.TOC.Enabled = true
	}
	if f.title != "" {
		cfg.TOC.Title = f.title
	}
	if f.minDepth != 0 {
		cfg.TOC.MinDepth = f.minDepth
	}
	if f.maxDepth != 0 {
		cfg.TOC.MaxDepth = f.maxDepth
	}
}

// rendererOptions translates cfg into docmark.Renderer options.
func rendererOptions(cfg *config.Config) []docmark.Option {
	var opts []docmark.Option
	if cfg.Assets.BasePath != "" {
		opts = append(opts, docmark.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Highlight.Disabled {
		opts = append(opts, docmark.WithoutHighlighting())
	} else if cfg.Highlight.Style != "" {
		opts = append(opts, docmark.WithHighlightStyle(cfg.Highlight.Style))
	}
	return opts
}

// baseURLRewriter resolves page-relative URLs against base.
// Anchors and root-relative paths are kept as written.
// Returns nil when base is empty.
func baseURLRewriter(base string) (docmark.URLRewriter, error) {
	if base == "" {
		return nil, nil
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
	}
	return func(_ *docmark.ModulePath, raw string) string {
		if !pipeline.IsRelativeURL(raw) {
			return raw
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return raw
		}
		return u.ResolveReference(ref).String()
	}, nil
}

// tocDepths returns the configured TOC range with defaults for zero values.
func tocDepths(cfg *config.Config) (minDepth, maxDepth int) {
	minDepth, maxDepth = cfg.TOC.MinDepth, cfg.TOC.MaxDepth
	if minDepth == 0 {
		minDepth = 1
	}
	if maxDepth == 0 {
		maxDepth = 3
	}
	return minDepth, maxDepth
}
