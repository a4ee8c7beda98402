package domain

import (
	"fmt"
	"strings"
)

// VarNamer resolves a state-vector index back to its source name, for
// printing. Satisfied by internal/symtab.Table.
type VarNamer interface {
	Name(idx int) string
}

// Format renders node idx's analyzed state as spec.md §6's per-node output
// block: a "[Pidx]" header followed by one "  var = interval" line per
// variable in table order, or a single "  BOTTOM" line for an unreachable
// point.
func Format(idx int, st State, names VarNamer, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[P%d]\n", idx)
	if st.IsBottom() {
		b.WriteString("  BOTTOM\n")
		return b.String()
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  %s = %s\n", names.Name(i), st.Values[i])
	}
	return b.String()
}
