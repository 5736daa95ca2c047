package docmark

import (
	"fmt"
	"sort"
)

// kindSections lists the symbol sections of a module page, in page order.
var kindSections = []struct {
	kind  SymbolKind
	title string
}{
	{KindClass, "Classes"},
	{KindEnum, "Enums"},
	{KindFunction, "Functions"},
	{KindInterface, "Interfaces"},
	{KindNamespace, "Namespaces"},
	{KindTypeAlias, "Type Aliases"},
	{KindVariable, "Variables"},
}

// SymbolSummary is a symbol listed on its module page.
type SymbolSummary struct {
	Name        string
	Kind        SymbolKind
	Href        string
	SummaryHTML string
	Deprecated  bool
}

// ModuleDoc is the rendered documentation of one module page.
type ModuleDoc struct {
	// DeprecatedHTML is the rendered @deprecated notice, if any.
	DeprecatedHTML string
	// Deprecated reports whether the module doc carries @deprecated, even
	// one without text.
	Deprecated bool
	DocsHTML   string
	Sections   []Section
}

// ModuleDoc renders the page content of m: the module doc comment, its
// examples and, for modules other than the main one, the module's symbols
// grouped by kind.
// Returns ErrUnknownModule if m is not part of the context's graph.
func (r *Renderer) ModuleDoc(rc *RenderContext, m ModulePath) (*ModuleDoc, error) {
	if rc == nil {
		rc = NewRenderContext(nil, ModulePosition(m))
	}
	symbols, err := rc.graph.Symbols(m)
	if err != nil {
		return nil, err
	}

	doc := &ModuleDoc{}
	for _, s := range symbols {
		if s.Kind != KindModuleDoc {
			continue
		}
		if err := r.fillModuleDoc(rc, doc, s.Doc); err != nil {
			return nil, fmt.Errorf("module %s: %w", m.DisplayName(), err)
		}
		break
	}

	if m.Main {
		return doc, nil
	}

	for _, ks := range kindSections {
		section, err := r.symbolSection(rc, m, symbols, ks.kind, ks.title)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.DisplayName(), err)
		}
		if section != nil {
			doc.Sections = append(doc.Sections, *section)
		}
	}
	return doc, nil
}

func (r *Renderer) fillModuleDoc(rc *RenderContext, doc *ModuleDoc, c Comment) error {
	for _, tag := range c.Tags {
		if tag.Kind != TagDeprecated {
			continue
		}
		html, err := r.RenderMarkdown(rc, tag.Doc, false)
		if err != nil {
			return fmt.Errorf("rendering deprecation notice: %w", err)
		}
		doc.Deprecated = true
		doc.DeprecatedHTML = html
		break
	}

	examples, err := r.Examples(rc, c)
	if err != nil {
		return err
	}
	if examples != nil {
		doc.Sections = append(doc.Sections, *examples)
	}

	doc.DocsHTML, err = r.BodyToHTML(rc, c, false)
	if err != nil {
		return fmt.Errorf("rendering module doc: %w", err)
	}
	return nil
}

// symbolSection lists the symbols of one kind, sorted by name.
// Returns nil when the module has none.
func (r *Renderer) symbolSection(rc *RenderContext, m ModulePath, symbols []Symbol, kind SymbolKind, title string) (*Section, error) {
	var items []SymbolSummary
	for _, s := range symbols {
		if s.Kind != kind {
			continue
		}
		summary, err := r.BodyToHTML(rc, s.Doc, true)
		if err != nil {
			return nil, fmt.Errorf("rendering %s summary: %w", s.Name, err)
		}
		items = append(items, SymbolSummary{
			Name:        s.Name,
			Kind:        s.Kind,
			Href:        rc.Href(SymbolPosition(m, s.Name)),
			SummaryHTML: summary,
			Deprecated:  hasTag(s.Doc, TagDeprecated),
		})
	}
	if len(items) == 0 {
		return nil, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return &Section{ID: title, Title: title, Symbols: items}, nil
}

func hasTag(c Comment, kind TagKind) bool {
	for _, t := range c.Tags {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
