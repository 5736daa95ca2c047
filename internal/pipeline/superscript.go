package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindSuperscript is the kind of SuperscriptNode nodes.
var KindSuperscript = ast.NewNodeKind("Superscript")

// SuperscriptNode is text raised with ^caret^ syntax.
type SuperscriptNode struct {
	ast.BaseInline
}

// Kind implements ast.Node.
func (n *SuperscriptNode) Kind() ast.NodeKind {
	return KindSuperscript
}

// Dump implements ast.Node.
func (n *SuperscriptNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type superscriptParser struct{}

func (p *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

// Parse reads ^text^ where text is non-empty and contains no whitespace.
func (p *superscriptParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 3 || line[0] != '^' {
		return nil
	}

	for i := 1; i < len(line); i++ {
		c := line[i]
		if util.IsSpace(c) {
			return nil
		}
		if c != '^' {
			continue
		}
		if i == 1 {
			return nil
		}
		block.Advance(i + 1)
		node := &SuperscriptNode{}
		node.AppendChild(node, ast.NewTextSegment(text.NewSegment(segment.Start+1, segment.Start+i)))
		return node
	}
	return nil
}

type superscriptRenderer struct{}

func (r *superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSuperscript, r.render)
}

func (r *superscriptRenderer) render(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<sup>")
	} else {
		_, _ = w.WriteString("</sup>")
	}
	return ast.WalkContinue, nil
}

type superscriptExtension struct{}

// Superscript enables ^superscript^ markup.
var Superscript goldmark.Extender = &superscriptExtension{}

func (e *superscriptExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&superscriptParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&superscriptRenderer{}, 500),
	))
}
