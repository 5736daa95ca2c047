package main

import (
	"errors"
	"os"

	docmark "github.com/alnah/go-docmark"
	"github.com/alnah/go-docmark/internal/config"
	"github.com/alnah/go-docmark/internal/fileutil"
)

// Exit codes for the docmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render or build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, manifest, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitRender  = 4 // Markdown rendering or sanitizing failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, docmark.ErrRender) ||
		errors.Is(err, docmark.ErrSanitize) ||
		errors.Is(err, docmark.ErrInternal) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, config.ErrManifestNotFound) ||
		errors.Is(err, fileutil.ErrPathEscape) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, ErrInvalidBaseURL) ||
		errors.Is(err, ErrFrontMatter) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, config.ErrManifestParse) ||
		errors.Is(err, config.ErrManifestInvalid) ||
		errors.Is(err, docmark.ErrDuplicateModule) ||
		errors.Is(err, docmark.ErrEmptyModulePath) ||
		errors.Is(err, docmark.ErrInvalidAssetPath) ||
		errors.Is(err, docmark.ErrIconSet) ||
		errors.Is(err, docmark.ErrHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
