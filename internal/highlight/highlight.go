// Package highlight provides the code block adapter that colors fenced code
// with chroma, emitting class-based markup instead of inline styles.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// ErrUnknownStyle indicates a style name chroma does not register.
var ErrUnknownStyle = errors.New("unknown highlight style")

// New returns a goldmark adapter highlighting fenced code blocks with the
// named chroma style. An empty name selects DefaultStyle.
func New(style string) (goldmark.Extender, error) {
	s, err := lookup(style)
	if err != nil {
		return nil, err
	}
	return highlighting.NewHighlighting(
		highlighting.WithCustomStyle(s),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true), // token classes are allow-listed by the sanitizer
		),
	), nil
}

// WriteCSS writes the stylesheet matching the classes emitted for style.
func WriteCSS(w io.Writer, style string) error {
	s, err := lookup(style)
	if err != nil {
		return err
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(w, s); err != nil {
		return fmt.Errorf("writing %s stylesheet: %w", s.Name, err)
	}
	return nil
}

// ClassNames returns every CSS class chroma can put on a token span,
// sorted and without duplicates.
func ClassNames() []string {
	names := classNames()
	out := make([]string, len(names))
	copy(out, names)
	return out
}

var classNames = sync.OnceValue(func() []string {
	seen := make(map[string]bool, len(chroma.StandardTypes))
	names := make([]string, 0, len(chroma.StandardTypes))
	for _, name := range chroma.StandardTypes {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
})

func lookup(style string) (*chroma.Style, error) {
	if style == "" {
		style = DefaultStyle
	}
	s, ok := styles.Registry[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return s, nil
}
