package pipeline

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// disallowedRawTag matches the opening of tags that GFM's tag filter
// neutralizes in raw HTML.
var disallowedRawTag = regexp.MustCompile(`(?i)<(/?)(title|textarea|style|xmp|iframe|noembed|noframes|script|plaintext)([\s/>]|$)`)

// filterTags escapes the leading '<' of every disallowed tag.
func filterTags(b []byte) []byte {
	return disallowedRawTag.ReplaceAll(b, []byte("&lt;${1}${2}${3}"))
}

// tagFilterRenderer writes raw HTML blocks and inline HTML through filterTags.
type tagFilterRenderer struct{}

func (r *tagFilterRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *tagFilterRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	if entering {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			_, _ = w.Write(filterTags(line.Value(source)))
		}
		return ast.WalkContinue, nil
	}
	if n.HasClosure() {
		_, _ = w.Write(filterTags(n.ClosureLine.Value(source)))
	}
	return ast.WalkContinue, nil
}

func (r *tagFilterRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		_, _ = w.Write(filterTags(segment.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}

type tagFilterExtension struct{}

// TagFilter enables the GFM tag filter on raw HTML. It takes precedence over
// goldmark's default HTML block and inline HTML renderers.
var TagFilter goldmark.Extender = &tagFilterExtension{}

func (e *tagFilterExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&tagFilterRenderer{}, 100),
	))
}
