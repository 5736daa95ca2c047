package docmark

import (
	"github.com/yuin/goldmark"

	"github.com/alnah/go-docmark/internal/toc"
)

// TOC is a heading adapter for one page. Pass it with WithHeadingAdapter;
// every heading rendered through it gets a unique anchor id and is
// recorded for the page's table of contents.
type TOC struct {
	collector *toc.Collector
}

// TOCEntry is one recorded heading.
type TOCEntry = toc.Entry

// Compile-time interface implementation check.
var _ goldmark.Extender = (*TOC)(nil)

// NewTOC creates an empty TOC.
func NewTOC() *TOC {
	return &TOC{collector: toc.New()}
}

// Extend implements goldmark.Extender.
func (t *TOC) Extend(m goldmark.Markdown) {
	t.collector.Extend(m)
}

// Entries returns the headings rendered so far, in order.
func (t *TOC) Entries() []TOCEntry {
	return t.collector.Entries()
}

// HTML renders the numbered table of contents for headings between
// minDepth and maxDepth. Returns "" when none is in range.
func (t *TOC) HTML(title string, minDepth, maxDepth int) string {
	return toc.HTML(t.collector.Entries(), title, minDepth, maxDepth)
}
