// Package assets provides the alert icons and stylesheets used by rendered
// documentation fragments. Assets can be loaded from embedded files or a
// custom filesystem path.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default icons)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// IconSet sits on top of any loader and maps alert kinds (note, tip,
// important, warning, caution) to their inline SVG.
//
// # Directory Structure
//
//	{basePath}/
//	├── icons/
//	│   └── {name}.svg           # Inline icons (e.g., info-circle.svg)
//	└── styles/
//	    └── {name}.css           # Stylesheets (e.g., docmark.css)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
