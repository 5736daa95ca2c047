package docmark

import (
	"fmt"
	"strconv"
)

// Example is one rendered @example tag.
type Example struct {
	ID        string // anchor id, "example_<index>"
	Title     string // markdown title, or "Example <n>"
	TitleHTML string
	BodyHTML  string
}

// Section is a titled group of module page content: examples or the
// symbols of one kind.
type Section struct {
	ID       string
	Title    string
	Examples []Example
	Symbols  []SymbolSummary
}

// Examples renders the @example tags of c. Returns nil when c has none.
func (r *Renderer) Examples(rc *RenderContext, c Comment) (*Section, error) {
	var examples []Example
	for _, tag := range c.Tags {
		if tag.Kind != TagExample {
			continue
		}
		ex, err := r.example(rc, tag.Doc, len(examples))
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}

	if len(examples) == 0 {
		return nil, nil
	}
	return &Section{ID: "examples", Title: "Examples", Examples: examples}, nil
}

// example renders one example. The title is the text up to the first blank
// line or code fence; the rest is the body.
func (r *Renderer) example(rc *RenderContext, doc string, i int) (Example, error) {
	title, body, ok := SplitMarkdownTitle(doc)
	if !ok {
		title = fmt.Sprintf("Example %d", i+1)
	}

	titleHTML, err := r.RenderMarkdown(rc, title, false)
	if err != nil {
		return Example{}, fmt.Errorf("rendering example %d title: %w", i+1, err)
	}
	bodyHTML, err := r.RenderMarkdown(rc, body, true)
	if err != nil {
		return Example{}, fmt.Errorf("rendering example %d body: %w", i+1, err)
	}

	return Example{
		ID:        "example_" + strconv.Itoa(i),
		Title:     title,
		TitleHTML: titleHTML,
		BodyHTML:  bodyHTML,
	}, nil
}
