package docmark

import (
	"net/url"
	"strings"
)

// HrefResolver computes the URLs that cross-references point to.
type HrefResolver interface {
	// ResolvePath returns the URL of target as seen from current.
	ResolvePath(current, target Position) string
	// ResolveExternalModule resolves a module reference that is not part of
	// the graph. symbol is empty when only the module is referenced.
	ResolveExternalModule(module, symbol string) (href, title string, ok bool)
}

// SymbolHrefFunc resolves a raw link string to the URL of a symbol page.
type SymbolHrefFunc func(link string) (string, bool)

// DefaultHrefResolver lays pages out as relative HTML files:
//
//	index.html
//	all_symbols.html
//	~/<symbol>.html                  (main module)
//	./<path>/index.html
//	./<path>/~/<symbol>.html
//
// Path segments and symbol names are percent-escaped. It knows no external
// modules.
type DefaultHrefResolver struct{}

// Compile-time interface implementation check.
var _ HrefResolver = DefaultHrefResolver{}

// ResolvePath implements HrefResolver.
func (DefaultHrefResolver) ResolvePath(current, target Position) string {
	backs := strings.Repeat("../", depth(current))

	switch target.kind {
	case PositionModule:
		if target.module.Main {
			return backs + "./index.html"
		}
		return backs + "./" + escapePath(target.module.Path) + "/index.html"
	case PositionSymbol:
		if target.module.Main {
			return backs + "./~/" + url.PathEscape(target.symbol) + ".html"
		}
		return backs + "./" + escapePath(target.module.Path) + "/~/" + url.PathEscape(target.symbol) + ".html"
	case PositionAllSymbols:
		return backs + "./all_symbols.html"
	default:
		return backs + "./index.html"
	}
}

// ResolveExternalModule implements HrefResolver.
func (DefaultHrefResolver) ResolveExternalModule(string, string) (string, string, bool) {
	return "", "", false
}

// escapePath escapes each segment of a module path for use in a URL.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// depth returns how many directories a page sits below the output root.
func depth(p Position) int {
	switch p.kind {
	case PositionModule:
		if p.module.Main {
			return 0
		}
		return strings.Count(p.module.Path, "/") + 1
	case PositionSymbol:
		if p.module.Main {
			return 1
		}
		return strings.Count(p.module.Path, "/") + 2
	default:
		return 0
	}
}
