package pipeline

import "strings"

// SplitMarkdownTitle splits md at the earlier of its first blank line and
// its first code fence. The head is the title and the tail the body.
// With an empty head there is no title; with an empty tail the head is
// returned as the body instead.
func SplitMarkdownTitle(md string) (title, body string, hasTitle bool) {
	idx := len(md)
	if i := strings.Index(md, "\n\n"); i >= 0 {
		idx = i
	}
	if i := strings.Index(md, "```"); i >= 0 && i < idx {
		idx = i
	}

	head, tail := md[:idx], md[idx:]
	switch {
	case head == "":
		return "", tail, false
	case tail == "":
		return "", head, false
	default:
		return head, tail, true
	}
}
