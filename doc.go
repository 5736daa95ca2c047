// Package docmark renders the markdown of documentation comments to
// sanitized HTML fragments.
//
// # Quick Start
//
// Build a graph of documented modules, pick the page being rendered and
// render a comment:
//
//	graph := docmark.NewGraph()
//	mod := docmark.ModulePath{Path: "/mod.ts"}
//	_ = graph.Add(mod, docmark.Symbol{Name: "Foo", Kind: docmark.KindClass})
//
//	r, err := docmark.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rc := docmark.NewRenderContext(graph, docmark.ModulePosition(mod))
//	html, err := r.RenderMarkdown(rc, "See {@link Foo}.", false)
//
// # Rendering Pipeline
//
// Each render runs these stages:
//
//  1. {@link} and {@linkcode} references are resolved against the graph
//  2. The markdown is parsed with the documentation extensions
//     (autolinks, tables, task lists, strikethrough, superscript,
//     description lists)
//  3. Alert blockquotes ("> [!NOTE]") and video links are rewritten, or,
//     for summaries, everything but the first block of inline text is pruned
//  4. The tree is rendered with the heading and code highlight adapters
//  5. The HTML is sanitized against a fixed allow-list, relative URLs going
//     through the context's URLRewriter
//
// Strip runs stages 1 and 2 and returns the plain text instead.
//
// # Render Contexts
//
// A RenderContext is bound to one page. Links resolve relative to its
// Position, and its URLRewriter sees the module of that page only:
//
//	rc := docmark.NewRenderContext(graph, docmark.SymbolPosition(mod, "Foo"),
//	    docmark.WithURLRewriter(func(m *docmark.ModulePath, u string) string {
//	        return "https://cdn.example.com/" + u
//	    }),
//	    docmark.WithHeadingAdapter(toc),
//	)
//
// Contexts are immutable and may be shared by concurrent renders. Heading
// adapters collect state and belong to one page.
//
// # Errors
//
// Unresolvable references and malformed markup degrade to text. Failures
// of the parser, renderer or sanitizer are returned wrapped around
// ErrRender, ErrSanitize or ErrInternal for the affected call only.
package docmark
