package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// KindEmbeddedHTML is the kind of EmbeddedHTML nodes.
var KindEmbeddedHTML = ast.NewNodeKind("EmbeddedHTML")

// EmbeddedHTML holds markup produced by the tree rewriter.
// It is written to the output verbatim and has no children.
type EmbeddedHTML struct {
	ast.BaseBlock
	Literal []byte
}

// NewEmbeddedHTML creates an EmbeddedHTML node for literal.
func NewEmbeddedHTML(literal string) *EmbeddedHTML {
	return &EmbeddedHTML{Literal: []byte(literal)}
}

// Kind implements ast.Node.
func (n *EmbeddedHTML) Kind() ast.NodeKind {
	return KindEmbeddedHTML
}

// Dump implements ast.Node.
func (n *EmbeddedHTML) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Literal": string(n.Literal)}, nil)
}

type embeddedHTMLRenderer struct{}

func (r *embeddedHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindEmbeddedHTML, r.render)
}

func (r *embeddedHTMLRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.Write(node.(*EmbeddedHTML).Literal)
	}
	return ast.WalkSkipChildren, nil
}

type embeddedHTMLExtension struct{}

// EmbeddedHTMLExtension registers the EmbeddedHTML renderer.
var EmbeddedHTMLExtension goldmark.Extender = &embeddedHTMLExtension{}

func (e *embeddedHTMLExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&embeddedHTMLRenderer{}, 500),
	))
}
