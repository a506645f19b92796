package scope

import (
	"fmt"

	"github.com/arnavsurve/minipas/internal/checker/symbols"
)

// Table is the symbol table for one analysis run. The language has a single
// flat scope: every variable is declared in the var block and visible to the
// whole statement section. Keys are exact lexemes — no case folding — so 'I'
// and 'i' are distinct entries even though keywords fold case.
type Table struct {
	symbols map[string]symbols.SymbolInfo
}

func NewTable() *Table {
	return &Table{
		symbols: make(map[string]symbols.SymbolInfo),
	}
}

// Define adds a symbol to the table. It returns an error if the name is
// already declared.
func (t *Table) Define(name string, info symbols.SymbolInfo) error {
	if _, exists := t.symbols[name]; exists {
		return fmt.Errorf("symbol '%s' already declared", name)
	}
	t.symbols[name] = info
	return nil
}

// Lookup returns the info recorded for name.
func (t *Table) Lookup(name string) (*symbols.SymbolInfo, bool) {
	info, ok := t.symbols[name]
	if !ok {
		return nil, false
	}
	// Return a pointer to a copy to prevent modification of the map entry via the pointer
	infoCopy := info
	return &infoCopy, true
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}
