package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled cross-reference patterns.
var (
	// {@link target}, {@linkcode target}, {@linkplain target}
	jsdocLinkPattern = regexp.MustCompile(`(?m)\{\s*@link(?P<modifier>code|plain)?\s+(?P<value>[^}]+)}`)

	// Absolute URLs, scheme URIs and root/relative paths.
	linkablePattern = regexp.MustCompile(`(^\.{0,2}/)|(^[A-Za-z]+:\S)`)

	// [module] or [module].symbol
	moduleLinkPattern = regexp.MustCompile(`^\[(\S+)\](?:\.(\S+)|\s|)$`)
)

var (
	modifierGroup = jsdocLinkPattern.SubexpIndex("modifier")
	valueGroup    = jsdocLinkPattern.SubexpIndex("value")
)

// ModuleRef is a module found in the documentation graph.
type ModuleRef interface {
	DisplayName() string
	HasSymbol(qualifiedName string) bool
}

// LinkScope answers the lookups needed to resolve cross-references
// from the point of view of one render position.
type LinkScope interface {
	// Module finds a module by path or display name.
	Module(ref string) (ModuleRef, bool)
	// ModuleHref returns the URL of a module's index page.
	ModuleHref(m ModuleRef) string
	// SymbolHref returns the URL of a symbol page within a module.
	SymbolHref(m ModuleRef, symbol string) string
	// ExternalModule resolves modules unknown to the local graph.
	// symbol is empty when the reference names the module only.
	ExternalModule(module, symbol string) (href, title string, ok bool)
	// LookupSymbolHref resolves a raw link string as a symbol reference.
	LookupSymbolHref(link string) (string, bool)
}

// ParseLinks replaces every {@link ...} and {@linkcode ...} occurrence in md
// with a markdown link, inline code or plain text.
// Unresolvable targets degrade to their title text.
func ParseLinks(md string, scope LinkScope) string {
	return jsdocLinkPattern.ReplaceAllStringFunc(md, func(match string) string {
		sub := jsdocLinkPattern.FindStringSubmatch(match)
		code := sub[modifierGroup] == "code"
		return resolveLink(sub[valueGroup], code, scope)
	})
}

// resolveLink turns the value of a single cross-reference into markdown.
func resolveLink(value string, code bool, scope LinkScope) string {
	link, title := splitLinkValue(value)

	if m := moduleLinkPattern.FindStringSubmatch(link); m != nil {
		link, title = resolveModuleLink(link, title, m[1], m[2], scope)
	}

	if title == "" {
		title = link
	}
	if href, ok := scope.LookupSymbolHref(link); ok {
		link = href
	}

	if linkablePattern.MatchString(link) {
		if code {
			return "[`" + title + "`](" + link + ")"
		}
		return "[" + title + "](" + link + ")"
	}

	if code {
		return "`" + title + "`"
	}
	return title
}

// splitLinkValue separates the link target from an optional title.
// The first '|' wins over the first space.
func splitLinkValue(value string) (link, title string) {
	if before, after, ok := strings.Cut(value, "|"); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if before, after, ok := strings.Cut(value, " "); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return value, ""
}

// resolveModuleLink handles the [module] and [module].symbol forms.
// The link is left untouched when the module is known but the symbol is not.
func resolveModuleLink(link, title, module, symbol string, scope LinkScope) (string, string) {
	ref, ok := scope.Module(module)
	if !ok {
		if href, extTitle, ok := scope.ExternalModule(module, symbol); ok {
			return href, extTitle
		}
		return link, title
	}

	if symbol == "" {
		if title == "" {
			title = ref.DisplayName()
		}
		return scope.ModuleHref(ref), title
	}

	if !ref.HasSymbol(symbol) {
		return link, title
	}
	if title == "" {
		title = ref.DisplayName() + " " + symbol
	}
	return scope.SymbolHref(ref, symbol), title
}
