package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// URLEvaluator maps a URL found in rendered output to its final form.
// It is bound to one render and must not retain state between calls.
type URLEvaluator func(raw string) string

// urlAttrs lists the attributes whose values are URLs.
var urlAttrs = map[string]bool{
	"href":   true,
	"src":    true,
	"cite":   true,
	"poster": true,
}

// RewriteURLs passes every URL attribute of the fragment through eval.
// A nil eval returns the fragment unchanged.
func RewriteURLs(fragment string, eval URLEvaluator) (string, error) {
	if eval == nil || strings.TrimSpace(fragment) == "" {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	rewriteNode(doc, eval)
	return renderFragment(doc)
}

// IsRelativeURL reports whether raw is a path relative to the current page:
// not empty, not an anchor, not absolute, and carrying no scheme.
func IsRelativeURL(raw string) bool {
	if raw == "" || strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "/") {
		return false
	}
	scheme, _, found := strings.Cut(raw, ":")
	if !found || strings.ContainsAny(scheme, "/?#") {
		return true
	}
	return false
}

// parseFragment parses HTML in body context and gathers the nodes under a
// single document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of the container built by parseFragment.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, eval URLEvaluator) {
	if n.Type == html.ElementNode {
		for i, attr := range n.Attr {
			if attr.Namespace == "" && urlAttrs[attr.Key] {
				n.Attr[i].Val = eval(attr.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, eval)
	}
}
