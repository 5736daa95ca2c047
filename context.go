package docmark

import (
	"net/url"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-docmark/internal/pipeline"
)

// URLRewriter rewrites a relative URL found in rendered output. current is
// the module of the page being rendered, nil outside module pages.
type URLRewriter func(current *ModulePath, url string) string

// RenderContext carries everything one top-level render depends on.
// It is immutable; use At to render for another position.
type RenderContext struct {
	graph       *Graph
	position    Position
	hrefs       HrefResolver
	symbolHref  SymbolHrefFunc
	urlRewriter URLRewriter
	headings    goldmark.Extender
	highlighter goldmark.Extender
	noHighlight bool
}

// ContextOption configures a RenderContext.
type ContextOption func(*RenderContext)

// WithHrefResolver sets how page paths and external modules resolve.
// Defaults to DefaultHrefResolver.
func WithHrefResolver(r HrefResolver) ContextOption {
	return func(rc *RenderContext) {
		if r != nil {
			rc.hrefs = r
		}
	}
}

// WithSymbolHref replaces the lookup that turns a bare link such as
// "Foo.bar" into a symbol URL.
func WithSymbolHref(fn SymbolHrefFunc) ContextOption {
	return func(rc *RenderContext) {
		rc.symbolHref = fn
	}
}

// WithURLRewriter rewrites every relative URL of the sanitized output.
func WithURLRewriter(fn URLRewriter) ContextOption {
	return func(rc *RenderContext) {
		rc.urlRewriter = fn
	}
}

// WithHeadingAdapter renders headings through ext, for example a
// *toc.Collector. The adapter is owned by one page at a time.
func WithHeadingAdapter(ext goldmark.Extender) ContextOption {
	return func(rc *RenderContext) {
		rc.headings = ext
	}
}

// WithHighlightAdapter renders fenced code through ext instead of the
// renderer's highlighter.
func WithHighlightAdapter(ext goldmark.Extender) ContextOption {
	return func(rc *RenderContext) {
		rc.highlighter = ext
	}
}

// WithoutHighlight disables code highlighting for renders of this context.
func WithoutHighlight() ContextOption {
	return func(rc *RenderContext) {
		rc.noHighlight = true
	}
}

// NewRenderContext creates a context rendering at pos. A nil graph is
// treated as empty.
func NewRenderContext(graph *Graph, pos Position, opts ...ContextOption) *RenderContext {
	if graph == nil {
		graph = NewGraph()
	}
	rc := &RenderContext{
		graph:    graph,
		position: pos,
		hrefs:    DefaultHrefResolver{},
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// At returns a copy of the context rendering at pos.
func (rc *RenderContext) At(pos Position) *RenderContext {
	next := *rc
	next.position = pos
	return &next
}

// Graph returns the documentation graph.
func (rc *RenderContext) Graph() *Graph {
	return rc.graph
}

// Position returns the page being rendered.
func (rc *RenderContext) Position() Position {
	return rc.position
}

// Href returns the URL of target as seen from the current position.
func (rc *RenderContext) Href(target Position) string {
	return rc.hrefs.ResolvePath(rc.position, target)
}

// LookupSymbolHref resolves link as a qualified symbol name.
// Without a WithSymbolHref override, the current module is searched first,
// then every module in graph order.
func (rc *RenderContext) LookupSymbolHref(link string) (string, bool) {
	if rc.symbolHref != nil {
		return rc.symbolHref(link)
	}

	if m, ok := rc.position.Module(); ok && rc.graph.HasSymbol(m, link) {
		return rc.Href(SymbolPosition(m, link)), true
	}
	for m := range rc.graph.All() {
		if rc.graph.HasSymbol(m, link) {
			return rc.Href(SymbolPosition(m, link)), true
		}
	}
	return "", false
}

// urlEvaluator binds the URL rewriter to the module of this render.
// Absolute URLs are left alone. Returns nil when no rewriter is set.
func (rc *RenderContext) urlEvaluator() pipeline.URLEvaluator {
	if rc.urlRewriter == nil {
		return nil
	}

	var current *ModulePath
	if m, ok := rc.position.Module(); ok {
		current = &m
	}
	rewrite := rc.urlRewriter

	return func(raw string) string {
		if u, err := url.Parse(raw); err == nil && u.IsAbs() {
			return raw
		}
		return rewrite(current, raw)
	}
}

// linkScope adapts the context to the link resolver.
type linkScope struct {
	rc *RenderContext
}

// moduleRef is a graph module seen by the link resolver.
type moduleRef struct {
	path  ModulePath
	graph *Graph
}

// Compile-time interface implementation checks.
var (
	_ pipeline.LinkScope = linkScope{}
	_ pipeline.ModuleRef = moduleRef{}
)

func (m moduleRef) DisplayName() string {
	return m.path.DisplayName()
}

func (m moduleRef) HasSymbol(name string) bool {
	return m.graph.HasSymbol(m.path, name)
}

func (s linkScope) Module(ref string) (pipeline.ModuleRef, bool) {
	m, ok := s.rc.graph.FindModule(ref)
	if !ok {
		return nil, false
	}
	return moduleRef{path: m, graph: s.rc.graph}, true
}

func (s linkScope) ModuleHref(ref pipeline.ModuleRef) string {
	return s.rc.Href(ModulePosition(ref.(moduleRef).path))
}

func (s linkScope) SymbolHref(ref pipeline.ModuleRef, symbol string) string {
	return s.rc.Href(SymbolPosition(ref.(moduleRef).path, symbol))
}

func (s linkScope) ExternalModule(module, symbol string) (string, string, bool) {
	return s.rc.hrefs.ResolveExternalModule(module, symbol)
}

func (s linkScope) LookupSymbolHref(link string) (string, bool) {
	return s.rc.LookupSymbolHref(link)
}
