// Package pipeline implements the stages that turn documentation-comment
// markdown into sanitized HTML.
//
// The stages run in this order:
//   - ParseLinks substitutes {@link} and {@linkcode} cross-references
//   - Engine.Parse builds a goldmark tree with the documentation extensions
//   - Rewriter.Rewrite turns alert blockquotes and video links into raw HTML,
//     or ExtractTitle prunes the tree down to a one-block summary
//   - Engine.Render emits HTML through the caller's heading and code adapters
//   - Sanitizer.Sanitize rewrites URLs and applies the allow-list
//
// PlainText is a parallel last stage producing text instead of HTML.
//
// The stages hold no per-render state. Anything that depends on the page
// being rendered (link targets, URL rewriting) is passed in explicitly.
package pipeline
