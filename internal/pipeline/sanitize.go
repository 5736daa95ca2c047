package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-docmark/internal/highlight"
)

// ErrSanitize indicates the fragment could not be parsed for URL rewriting.
var ErrSanitize = errors.New("sanitizing HTML failed")

// allowedElements are the formatting tags kept in rendered fragments.
var allowedElements = []string{
	"a", "abbr", "acronym", "area", "article", "aside", "b", "bdi", "bdo",
	"blockquote", "br", "caption", "center", "cite", "code", "col",
	"colgroup", "data", "dd", "del", "details", "dfn", "div", "dl", "dt",
	"em", "figcaption", "figure", "footer", "h1", "h2", "h3", "h4", "h5",
	"h6", "header", "hgroup", "hr", "i", "img", "ins", "kbd", "li", "map",
	"mark", "nav", "ol", "p", "pre", "q", "rp", "rt", "rtc", "ruby", "s",
	"samp", "small", "span", "strike", "strong", "sub", "summary", "sup",
	"table", "tbody", "td", "th", "thead", "time", "tfoot", "tr", "tt", "u",
	"ul", "var", "wbr",
	// rewriter output, icons and copy buttons
	"video", "button", "svg", "path", "rect",
}

// Sanitizer applies the allow-list to rendered fragments.
// The zero value is not usable; use NewSanitizer.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer backed by the shared policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: policy()}
}

// Sanitize rewrites the URL attributes of fragment through eval, then strips
// everything the allow-list does not name. eval may be nil.
func (s *Sanitizer) Sanitize(fragment string, eval URLEvaluator) (string, error) {
	rewritten, err := RewriteURLs(fragment, eval)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSanitize, err)
	}
	return s.policy.Sanitize(rewritten), nil
}

// policy is built once and shared by every render.
var policy = sync.OnceValue(newPolicy)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)

	p.AllowAttrs("id", "align", "lang", "title").Globally()

	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("href", "hreflang").OnElements("a")
	p.AllowAttrs("cite").OnElements("blockquote", "q")
	p.AllowAttrs("cite", "datetime").OnElements("del", "ins")
	p.AllowAttrs("dir").OnElements("bdo")
	p.AllowAttrs("start").OnElements("ol")
	p.AllowAttrs("alt", "height", "src", "width").OnElements("img")
	p.AllowAttrs("src", "controls", "poster").OnElements("video")
	p.AllowAttrs("data-copy").OnElements("button")

	p.AllowAttrs("char", "charoff").OnElements("col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr")
	p.AllowAttrs("span").OnElements("col", "colgroup")
	p.AllowAttrs("summary").OnElements("table")
	p.AllowAttrs("colspan", "headers", "rowspan").OnElements("td", "th")
	p.AllowAttrs("size", "width").OnElements("hr")

	p.AllowAttrs("width", "height", "viewbox", "fill", "xmlns", "stroke",
		"stroke-width", "stroke-linecap", "stroke-linejoin").OnElements("svg")
	p.AllowAttrs("d", "fill", "fill-rule", "clip-rule", "stroke",
		"stroke-width", "stroke-linecap", "stroke-linejoin").OnElements("path")
	p.AllowAttrs("x", "y", "width", "height", "rx", "fill").OnElements("rect")

	p.AllowAttrs("class").Matching(classPattern(quoteAll("highlight", "chroma"))).OnElements("pre")
	p.AllowAttrs("class").Matching(classPattern(`language-[\w+-]+`)).OnElements("code")
	p.AllowAttrs("class").Matching(classPattern(quoteAll("context_button"))).OnElements("button")
	p.AllowAttrs("class").Matching(classPattern(quoteAll(
		"alert", "alert-note", "alert-tip", "alert-important", "alert-warning", "alert-caution",
	))).OnElements("div")
	p.AllowAttrs("class").Matching(classPattern(quoteAll(highlight.ClassNames()...))).OnElements("span")

	return p
}

// classPattern matches a class attribute made only of whitespace separated
// names matching alternation.
func classPattern(alternation string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*(?:` + alternation + `)(?:\s+(?:` + alternation + `))*\s*$`)
}

func quoteAll(names ...string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}
