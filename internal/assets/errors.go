package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrIconNotFound indicates the requested icon does not exist.
	ErrIconNotFound = errors.New("icon not found")

	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrIncompleteIconSet indicates an alert kind has no loadable icon.
	ErrIncompleteIconSet = errors.New("icon set missing required icon")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
