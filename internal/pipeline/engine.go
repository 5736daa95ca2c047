package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates the HTML emitter failed on a parsed tree.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Engine wraps a goldmark instance configured with the fixed extension set
// used for documentation comments, plus optional caller adapters.
// An Engine is safe for concurrent use when its adapters are.
type Engine struct {
	md goldmark.Markdown
}

// NewEngine creates an Engine. Adapters (heading, code highlighting) are
// appended after the built-in extensions; nil adapters are skipped.
func NewEngine(adapters ...goldmark.Extender) *Engine {
	exts := []goldmark.Extender{
		extension.Linkify,        // autolink
		extension.DefinitionList, // description lists
		extension.Strikethrough,
		Superscript,
		extension.NewTable(
			// align="..." survives sanitization, style="..." does not
			extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute),
		),
		TagFilter,
		extension.TaskList,
		EmbeddedHTMLExtension,
	}
	for _, a := range adapters {
		if a != nil {
			exts = append(exts, a)
		}
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(
			// Raw HTML passes through; the sanitizer always runs afterwards.
			html.WithUnsafe(),
		),
	)
	return &Engine{md: md}
}

// defaultEngine serves renders that carry no adapters (summaries, plain text).
var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine()
})

// DefaultEngine returns the shared adapter-free Engine.
func DefaultEngine() *Engine {
	return defaultEngine()
}

// Parse parses source into a mutable tree.
func (e *Engine) Parse(source []byte) ast.Node {
	return e.md.Parser().Parse(text.NewReader(source))
}

// Render serializes node and its descendants.
// node does not have to be a document.
func (e *Engine) Render(source []byte, node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Renderer().Render(&buf, source, node); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
