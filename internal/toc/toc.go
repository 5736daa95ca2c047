// Package toc provides the heading adapter that gives rendered headings
// unique anchor ids and collects them into a table of contents.
package toc

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/alnah/go-docmark/internal/pipeline"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// fallbackID is used for headings whose text yields no slug.
const fallbackID = "section"

// Entry is one collected heading.
type Entry struct {
	Level int    // 1-6
	ID    string // anchor id, unique per Collector
	Text  string // heading text without markup
}

// Collector is a goldmark adapter rendering headings with anchor ids.
// A Collector belongs to one page; ids are unique across everything it
// renders. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	used    map[string]bool
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{used: make(map[string]bool)}
}

// Extend implements goldmark.Extender.
func (c *Collector) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&headingRenderer{collector: c}, 500),
	))
}

// Entries returns the headings collected so far, in render order.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// add records a heading and returns its unique id.
func (c *Collector) add(level int, text string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	base, err := slug.Normalize(text)
	if err != nil || base == "" {
		base = fallbackID
	}
	id := base
	for i := 1; c.used[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	c.used[id] = true
	c.entries = append(c.entries, Entry{Level: level, ID: id, Text: text})
	return id
}

type headingRenderer struct {
	collector *Collector
}

func (r *headingRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.render)
}

func (r *headingRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		id := r.collector.add(n.Level, headingText(n, source))
		_, _ = fmt.Fprintf(w, `<h%d id="%s">`, n.Level, html.EscapeString(id))
	} else {
		_, _ = fmt.Fprintf(w, "</h%d>\n", n.Level)
	}
	return ast.WalkContinue, nil
}

// headingText returns the literal text of a heading's inline content.
func headingText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			if c.IsRaw() {
				b.Write(c.Segment.Value(source))
			} else {
				b.Write(pipeline.LiteralText(c.Segment.Value(source)))
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
