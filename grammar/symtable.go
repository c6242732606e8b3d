package grammar

import (
	"fmt"
)

// SymbolTable interns the non-terminals of a grammar. Every non-terminal gets
// a dense integer ID, which the parser uses to index its chart.
//
// IDs are handed out in the order of definition. Grammars define their
// non-terminals in lexicographic order, so comparing IDs is the same as
// comparing names.
type SymbolTable struct {
	ids   map[string]int
	names []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		ids: make(map[string]int),
	}
}

// Resolve checks for a symbol in the table.
func (st *SymbolTable) Resolve(name string) (int, bool) {
	id, ok := st.ids[name]
	return id, ok
}

// ResolveOrDefine finds a symbol in the table, inserting it if not found.
// Returns the ID and a flag, signalling whether the symbol has already been
// present.
func (st *SymbolTable) ResolveOrDefine(name string) (int, bool) {
	if id, ok := st.ids[name]; ok {
		return id, true
	}
	id := len(st.names)
	st.ids[name] = id
	st.names = append(st.names, name)
	return id, false
}

// Name returns the name of the symbol with ID id.
func (st *SymbolTable) Name(id int) string {
	if id < 0 || id >= len(st.names) {
		panic(fmt.Sprintf("symbol ID %d out of range", id))
	}
	return st.names[id]
}

// Size counts the symbols in a symbol table.
func (st *SymbolTable) Size() int {
	return len(st.names)
}

// Each iterates over the symbols in ID order, executing a mapper function.
func (st *SymbolTable) Each(mapper func(int, string)) {
	for id, name := range st.names {
		mapper(id, name)
	}
}
