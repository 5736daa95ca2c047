package pipeline

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// alertMarkers maps blockquote markers to alert kinds and default titles.
var alertMarkers = []struct {
	marker string
	kind   string
	title  string
}{
	{"[!NOTE]", "note", "Note"},
	{"[!TIP]", "tip", "Tip"},
	{"[!IMPORTANT]", "important", "Important"},
	{"[!WARNING]", "warning", "Warning"},
	{"[!CAUTION]", "caution", "Caution"},
}

// AlertIconSource supplies the inline SVG shown in front of an alert title.
type AlertIconSource interface {
	AlertIcon(kind string) string
}

// Rewriter applies the structural rewrites of documentation markdown:
// marked blockquotes become alert callouts and links to videos become
// embedded players.
type Rewriter struct {
	engine *Engine
	icons  AlertIconSource
}

// NewRewriter creates a Rewriter. engine renders alert bodies and must be
// the engine that renders the outer document.
func NewRewriter(engine *Engine, icons AlertIconSource) *Rewriter {
	return &Rewriter{engine: engine, icons: icons}
}

// alertMatch describes a blockquote recognized as an alert.
type alertMatch struct {
	kind      string
	title     string
	paragraph ast.Node
	lineEnd   int
}

// pendingRewrite is a replacement found during the walk.
type pendingRewrite struct {
	node  ast.Node
	alert *alertMatch
	video string
}

// Rewrite replaces matching nodes under root in place.
// Matches are collected in pre-order first and replaced afterwards; the
// children of a matched node are not visited by the same pass.
func (r *Rewriter) Rewrite(root ast.Node, source []byte) error {
	var pending []pendingRewrite

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n == root {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindBlockquote:
			if m, ok := matchAlert(n, source); ok {
				pending = append(pending, pendingRewrite{node: n, alert: m})
				return ast.WalkSkipChildren, nil
			}
		case ast.KindLink, ast.KindAutoLink:
			if url, ok := videoURL(n, source); ok {
				pending = append(pending, pendingRewrite{node: n, video: url})
				return ast.WalkSkipChildren, nil
			}
		}
		return ast.WalkContinue, nil
	})

	for _, p := range pending {
		var replacement ast.Node
		if p.alert != nil {
			alert, err := r.buildAlert(p.alert, source)
			if err != nil {
				return err
			}
			replacement = alert
		} else {
			replacement = NewEmbeddedHTML(fmt.Sprintf(`<video src="%s" controls></video>`, html.EscapeString(p.video)))
		}

		if parent := p.node.Parent(); parent != nil {
			parent.ReplaceChild(parent, p.node, replacement)
		}
	}
	return nil
}

// matchAlert reports whether the first source line of the blockquote's first
// paragraph is an alert marker, optionally followed by a custom title.
func matchAlert(blockquote ast.Node, source []byte) (*alertMatch, bool) {
	para := blockquote.FirstChild()
	if para == nil || para.Kind() != ast.KindParagraph {
		return nil, false
	}
	lines := para.Lines()
	if lines.Len() == 0 {
		return nil, false
	}

	first := lines.At(0)
	line := strings.TrimLeft(string(first.Value(source)), " \t")
	line = strings.TrimRight(line, "\r\n")
	token, title, _ := strings.Cut(line, " ")

	for _, a := range alertMarkers {
		if token != a.marker {
			continue
		}
		title = strings.TrimSpace(string(LiteralText([]byte(title))))
		if title == "" {
			title = a.title
		}
		end := first.Stop
		for end > first.Start && strings.ContainsRune(" \t\r\n", rune(source[end-1])) {
			end--
		}
		return &alertMatch{kind: a.kind, title: title, paragraph: para, lineEnd: end}, true
	}
	return nil, false
}

// buildAlert strips the marker line, renders what remains of the blockquote
// as a nested fragment and wraps it in the alert container.
func (r *Rewriter) buildAlert(m *alertMatch, source []byte) (ast.Node, error) {
	stripMarkerLine(m.paragraph, m.lineEnd)

	var rest []ast.Node
	for c := m.paragraph.NextSibling(); c != nil; c = c.NextSibling() {
		rest = append(rest, c)
	}

	doc := ast.NewDocument()
	if m.paragraph.HasChildren() {
		doc.AppendChild(doc, m.paragraph)
	}
	for _, c := range rest {
		doc.AppendChild(doc, c)
	}

	if err := r.Rewrite(doc, source); err != nil {
		return nil, err
	}
	body, err := r.engine.Render(source, doc)
	if err != nil {
		return nil, err
	}

	icon := ""
	if r.icons != nil {
		icon = r.icons.AlertIcon(m.kind)
	}

	return NewEmbeddedHTML(fmt.Sprintf(
		`<div class="alert alert-%s"><div>%s%s</div><div>%s</div></div>`+"\n",
		m.kind, icon, html.EscapeString(m.title), body,
	)), nil
}

// stripMarkerLine removes the inline nodes of the paragraph's first line.
func stripMarkerLine(para ast.Node, lineEnd int) {
	for c := para.FirstChild(); c != nil; {
		next := c.NextSibling()
		para.RemoveChild(para, c)
		if t, ok := c.(*ast.Text); ok {
			if t.SoftLineBreak() || t.HardLineBreak() || t.Segment.Stop >= lineEnd {
				return
			}
		}
		c = next
	}
}

// videoURL returns the destination of links pointing at .mov or .mp4 files.
func videoURL(n ast.Node, source []byte) (string, bool) {
	var dest string
	switch l := n.(type) {
	case *ast.Link:
		dest = string(l.Destination)
	case *ast.AutoLink:
		dest = string(l.URL(source))
	default:
		return "", false
	}
	if strings.HasSuffix(dest, ".mov") || strings.HasSuffix(dest, ".mp4") {
		return dest, true
	}
	return "", false
}
