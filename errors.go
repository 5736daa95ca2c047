package docmark

import (
	"errors"

	"github.com/alnah/go-docmark/internal/pipeline"
)

// Sentinel errors for graph construction.
var (
	ErrDuplicateModule = errors.New("duplicate module")
	ErrUnknownModule   = errors.New("unknown module")
	ErrEmptyModulePath = errors.New("module path cannot be empty")
)

// Sentinel errors for rendering.
var (
	ErrRender   = errors.New("markdown render failed")
	ErrSanitize = pipeline.ErrSanitize
	ErrInternal = errors.New("internal error")
)

// Sentinel errors for renderer configuration.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrIconSet          = errors.New("loading alert icons failed")
	ErrHighlightStyle   = errors.New("invalid highlight style")
)
