package docmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-docmark/internal/assets"
	"github.com/alnah/go-docmark/internal/highlight"
	"github.com/alnah/go-docmark/internal/pipeline"
)

// Wrapper classes of rendered fragments.
const (
	classMarkdown = "markdown"
	classSummary  = "markdown_summary"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.AlertIconSource = (*assets.IconSet)(nil)
	_ AssetLoader              = (*assets.AssetResolver)(nil)
)

// MarkdownOptions selects how MarkdownToHTML renders.
type MarkdownOptions struct {
	// TitleOnly renders the first block of the document as a summary.
	TitleOnly bool
	// NoTOC leaves headings to the default renderer even when the context
	// carries a heading adapter.
	NoTOC bool
}

// rendererConfig holds the options applied by NewRenderer.
type rendererConfig struct {
	assetPath      string
	highlightStyle string
	noHighlight    bool
}

// Renderer turns documentation markdown into sanitized HTML fragments.
// Create with NewRenderer. A Renderer is safe for concurrent use as long as
// the adapters of the contexts it renders are.
type Renderer struct {
	cfg         rendererConfig
	loader      AssetLoader
	icons       *assets.IconSet
	highlighter goldmark.Extender
	engine      *pipeline.Engine
	sanitizer   *pipeline.Sanitizer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetLoader loads alert icons and stylesheets from l.
// Takes precedence over WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(r *Renderer) {
		r.loader = l
	}
}

// WithAssetPath loads alert icons and stylesheets from dir, falling back to
// the built-in assets.
func WithAssetPath(dir string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = dir
	}
}

// WithHighlightStyle selects the chroma style of fenced code.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.highlightStyle = name
	}
}

// WithoutHighlighting renders fenced code as plain <pre><code> blocks.
func WithoutHighlighting() Option {
	return func(r *Renderer) {
		r.cfg.noHighlight = true
	}
}

// NewRenderer creates a Renderer.
// Returns error if the asset path, the icons or the highlight style are
// invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{sanitizer: pipeline.NewSanitizer()}
	for _, opt := range opts {
		opt(r)
	}

	if r.loader == nil && r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.loader = resolver
	}

	if r.loader != nil {
		icons, err := assets.NewIconSet(r.loader)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIconSet, err)
		}
		r.icons = icons
	} else {
		r.loader = assets.NewEmbeddedLoader()
		r.icons = assets.DefaultIconSet()
	}

	if !r.cfg.noHighlight {
		hl, err := highlight.New(r.cfg.highlightStyle)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHighlightStyle, err)
		}
		r.highlighter = hl
	}
	r.engine = pipeline.NewEngine(r.highlighter)

	return r, nil
}

// MarkdownToHTML renders md for rc.
// In title mode the result is the first block only, wrapped in
// <div class="markdown_summary">, or "" when the document has no block
// left after pruning. Otherwise the whole document is wrapped in
// <div class="markdown">.
// Recovers from internal panics so a single malformed comment cannot bring
// down a whole build.
func (r *Renderer) MarkdownToHTML(rc *RenderContext, md string, opts MarkdownOptions) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = "", fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	if rc == nil {
		rc = NewRenderContext(nil, RootPosition())
	}

	source := []byte(pipeline.ParseLinks(normalizeLineEndings(md), linkScope{rc: rc}))

	var fragment, class string
	if opts.TitleOnly {
		class = classSummary
		engine := pipeline.DefaultEngine()
		first := pipeline.ExtractTitle(engine.Parse(source))
		if first == nil {
			return "", nil
		}
		fragment, err = engine.Render(source, first)
	} else {
		class = classMarkdown
		engine := r.engineFor(rc, opts.NoTOC)
		doc := engine.Parse(source)
		if err := pipeline.NewRewriter(engine, r.icons).Rewrite(doc, source); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRender, err)
		}
		fragment, err = engine.Render(source, doc)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	clean, err := r.sanitizer.Sanitize(fragment, rc.urlEvaluator())
	if err != nil {
		return "", err
	}
	return `<div class="` + class + `">` + clean + `</div>`, nil
}

// RenderMarkdown renders md in full mode.
func (r *Renderer) RenderMarkdown(rc *RenderContext, md string, noTOC bool) (string, error) {
	return r.MarkdownToHTML(rc, md, MarkdownOptions{NoTOC: noTOC})
}

// BodyToHTML renders the body of a comment, or its summary.
// A comment without a body renders to "".
func (r *Renderer) BodyToHTML(rc *RenderContext, c Comment, summary bool) (string, error) {
	if c.Doc == "" {
		return "", nil
	}
	return r.MarkdownToHTML(rc, c.Doc, MarkdownOptions{TitleOnly: summary})
}

// Strip returns the text of md without any markup, for search indexes and
// meta descriptions.
func (r *Renderer) Strip(rc *RenderContext, md string) string {
	if rc == nil {
		rc = NewRenderContext(nil, RootPosition())
	}
	source := []byte(pipeline.ParseLinks(normalizeLineEndings(md), linkScope{rc: rc}))
	return pipeline.PlainText(pipeline.DefaultEngine().Parse(source), source)
}

// WriteCSS writes the stylesheet for rendered fragments: the docmark
// stylesheet from the asset loader followed by the highlight style.
func (r *Renderer) WriteCSS(w io.Writer) error {
	css, err := r.loader.LoadStyle(DefaultStyleName)
	if err != nil {
		return fmt.Errorf("loading stylesheet: %w", err)
	}
	if _, err := io.WriteString(w, css+"\n"); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	if r.cfg.noHighlight {
		return nil
	}
	return highlight.WriteCSS(w, r.cfg.highlightStyle)
}

// engineFor returns the engine for a full render in rc.
// The shared engine is used unless the context brings its own adapters.
func (r *Renderer) engineFor(rc *RenderContext, noTOC bool) *pipeline.Engine {
	headings := rc.headings
	if noTOC {
		headings = nil
	}
	if headings == nil && rc.highlighter == nil && !rc.noHighlight {
		return r.engine
	}

	highlighter := r.highlighter
	if rc.highlighter != nil {
		highlighter = rc.highlighter
	}
	if rc.noHighlight {
		highlighter = nil
	}
	return pipeline.NewEngine(highlighter, headings)
}

// SplitMarkdownTitle splits md at the earlier of its first blank line or
// first code fence. hasTitle is false when either part would be empty, in
// which case body holds all of md.
func SplitMarkdownTitle(md string) (title, body string, hasTitle bool) {
	return pipeline.SplitMarkdownTitle(md)
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
