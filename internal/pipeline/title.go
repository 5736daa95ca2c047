package pipeline

import (
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// titleKinds are the node kinds kept by ExtractTitle.
// Soft and hard breaks are flags on Text nodes and survive with them.
var titleKinds = map[ast.NodeKind]bool{
	ast.KindDocument:         true,
	ast.KindParagraph:        true,
	ast.KindHeading:          true,
	ast.KindText:             true,
	ast.KindString:           true,
	ast.KindCodeSpan:         true,
	ast.KindRawHTML:          true,
	ast.KindEmphasis:         true,
	extast.KindStrikethrough: true,
	KindSuperscript:          true,
	ast.KindLink:             true,
	ast.KindAutoLink:         true,
}

// ExtractTitle prunes every node of doc whose kind does not carry inline
// text and returns the first remaining top-level block. It returns nil when
// nothing remains.
func ExtractTitle(doc ast.Node) ast.Node {
	var pruned []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if !titleKinds[n.Kind()] {
			pruned = append(pruned, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, n := range pruned {
		if parent := n.Parent(); parent != nil {
			parent.RemoveChild(parent, n)
		}
	}
	return doc.FirstChild()
}
