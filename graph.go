package docmark

import (
	"fmt"
	"iter"
	"strings"
)

// ModulePath identifies one documented module.
// Path is the module's path relative to the package root and also its
// identity within a Graph.
type ModulePath struct {
	Path string
	Name string
	Main bool
}

// DisplayName returns Name, or Path without its leading slash.
func (m ModulePath) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return strings.TrimPrefix(m.Path, "/")
}

// SymbolKind classifies a documented symbol.
type SymbolKind string

// Symbol kinds, in the order their sections appear on a module page.
const (
	KindModuleDoc SymbolKind = "module_doc"
	KindClass     SymbolKind = "class"
	KindEnum      SymbolKind = "enum"
	KindFunction  SymbolKind = "function"
	KindInterface SymbolKind = "interface"
	KindNamespace SymbolKind = "namespace"
	KindTypeAlias SymbolKind = "type_alias"
	KindVariable  SymbolKind = "variable"
	KindImport    SymbolKind = "import"
)

// TagKind classifies a documentation tag.
type TagKind string

// Tag kinds.
const (
	TagDeprecated TagKind = "deprecated"
	TagExample    TagKind = "example"
	TagCategory   TagKind = "category"
	TagSee        TagKind = "see"
	TagSince      TagKind = "since"
	TagParam      TagKind = "param"
	TagReturn     TagKind = "return"
)

// Tag is one block tag of a documentation comment.
type Tag struct {
	Kind TagKind
	Name string
	Doc  string
}

// Comment is a parsed documentation comment. An empty Doc means the comment
// has no body.
type Comment struct {
	Doc  string
	Tags []Tag
}

// Symbol is a documented declaration. Name is the qualified name, for
// example "Foo" or "Foo.bar".
type Symbol struct {
	Name string
	Kind SymbolKind
	Doc  Comment
}

// Graph maps modules to their documented symbols, in insertion order.
// A Graph is not safe for concurrent mutation; once built it can be shared
// by concurrent renders.
type Graph struct {
	modules []ModulePath
	symbols [][]Symbol
	index   map[string]int
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Add registers a module and its symbols.
// Returns ErrDuplicateModule if a module with the same path exists.
func (g *Graph) Add(m ModulePath, symbols ...Symbol) error {
	if m.Path == "" {
		return ErrEmptyModulePath
	}
	if _, ok := g.index[m.Path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Path)
	}
	g.index[m.Path] = len(g.modules)
	g.modules = append(g.modules, m)
	g.symbols = append(g.symbols, append([]Symbol(nil), symbols...))
	return nil
}

// Symbols returns the symbols of m. Returns ErrUnknownModule if m is not
// part of the graph.
func (g *Graph) Symbols(m ModulePath) ([]Symbol, error) {
	i, ok := g.index[m.Path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, m.Path)
	}
	return g.symbols[i], nil
}

// Modules returns the modules in insertion order.
func (g *Graph) Modules() []ModulePath {
	return append([]ModulePath(nil), g.modules...)
}

// All iterates over modules and their symbols in insertion order.
func (g *Graph) All() iter.Seq2[ModulePath, []Symbol] {
	return func(yield func(ModulePath, []Symbol) bool) {
		for i, m := range g.modules {
			if !yield(m, g.symbols[i]) {
				return
			}
		}
	}
}

// FindModule returns the first module whose path or display name equals ref.
func (g *Graph) FindModule(ref string) (ModulePath, bool) {
	for _, m := range g.modules {
		if m.Path == ref || m.DisplayName() == ref {
			return m, true
		}
	}
	return ModulePath{}, false
}

// HasSymbol reports whether m declares a symbol with the qualified name.
func (g *Graph) HasSymbol(m ModulePath, name string) bool {
	i, ok := g.index[m.Path]
	if !ok {
		return false
	}
	for _, s := range g.symbols[i] {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Len returns the number of modules.
func (g *Graph) Len() int {
	return len(g.modules)
}
