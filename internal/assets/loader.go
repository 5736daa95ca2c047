package assets

// AssetLoader defines the contract for loading icons and stylesheets.
type AssetLoader interface {
	// LoadIcon loads an SVG icon by name (without .svg extension).
	// Returns ErrIconNotFound if the icon doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadIcon(name string) (string, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}
