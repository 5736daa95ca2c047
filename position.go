package docmark

// PositionKind classifies the page a render belongs to.
type PositionKind int

// Position kinds.
const (
	PositionRoot PositionKind = iota
	PositionModule
	PositionSymbol
	PositionAllSymbols
)

// String returns the lowercase name of the kind.
func (k PositionKind) String() string {
	switch k {
	case PositionRoot:
		return "root"
	case PositionModule:
		return "module"
	case PositionSymbol:
		return "symbol"
	case PositionAllSymbols:
		return "all_symbols"
	default:
		return "unknown"
	}
}

// Position is the page being rendered, used to compute relative hrefs.
type Position struct {
	kind   PositionKind
	module ModulePath
	symbol string
}

// RootPosition is the package index page.
func RootPosition() Position {
	return Position{kind: PositionRoot}
}

// ModulePosition is the index page of m.
func ModulePosition(m ModulePath) Position {
	return Position{kind: PositionModule, module: m}
}

// SymbolPosition is the page of symbol within m.
func SymbolPosition(m ModulePath, symbol string) Position {
	return Position{kind: PositionSymbol, module: m, symbol: symbol}
}

// AllSymbolsPosition is the page listing every symbol.
func AllSymbolsPosition() Position {
	return Position{kind: PositionAllSymbols}
}

// Kind returns the position kind.
func (p Position) Kind() PositionKind {
	return p.kind
}

// Module returns the module enclosing the position, if any.
func (p Position) Module() (ModulePath, bool) {
	if p.kind == PositionModule || p.kind == PositionSymbol {
		return p.module, true
	}
	return ModulePath{}, false
}

// Symbol returns the symbol name of a symbol position.
func (p Position) Symbol() string {
	return p.symbol
}
