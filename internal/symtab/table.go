// Package symtab assigns each variable occurring in a program a stable,
// zero-based index, collected once in first-occurrence order, per spec.md
// §4.3. The resulting Table doubles as domain.Env and domain.VarNamer so
// internal/domain never needs to know how names map to slots.
package symtab

import "pinterval/internal/ast"

type Table struct {
	names []string
	index map[string]int
}

// Build collects every variable referenced anywhere in the program (as an
// assignment target, an arithmetic operand, or both) in first-occurrence
// order and assigns it a stable index.
func Build(s ast.Stmt) *Table {
	var names []string
	seen := map[string]bool{}
	ast.Vars(s, &names, seen)

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return &Table{names: names, index: index}
}

// Index implements domain.Env.
func (t *Table) Index(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Name implements domain.VarNamer.
func (t *Table) Name(idx int) string { return t.names[idx] }

func (t *Table) Len() int { return len(t.names) }

func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
