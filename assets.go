package docmark

import (
	"github.com/alnah/go-docmark/internal/assets"
)

// DefaultStyleName is the built-in stylesheet for rendered fragments.
const DefaultStyleName = assets.DefaultStyleName

// AssetLoader loads the alert icons and stylesheets used by a Renderer.
// Implement it to serve assets from somewhere other than the binary or a
// directory, for example a database.
type AssetLoader interface {
	// LoadIcon returns the SVG markup of the named icon (without .svg).
	LoadIcon(name string) (string, error)
	// LoadStyle returns the CSS of the named stylesheet (without .css).
	LoadStyle(name string) (string, error)
}

// Asset errors re-exported for callers implementing AssetLoader.
var (
	ErrIconNotFound     = assets.ErrIconNotFound
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)

// NewEmbeddedAssetLoader returns the loader backed by the built-in assets.
func NewEmbeddedAssetLoader() AssetLoader {
	return assets.NewEmbeddedLoader()
}

// NewAssetLoader returns a loader reading icons/ and styles/ under basePath,
// falling back to the built-in assets for anything missing there.
// An empty basePath uses the built-in assets only.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	return assets.NewAssetResolver(basePath)
}
