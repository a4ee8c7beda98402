package cfg

import (
	"fmt"
	"strings"
)

// Dot renders g as a Graphviz digraph: nodes labeled P0..Pk-1, edges
// labeled by the pretty-printed command or guard, per spec.md §6.
func Dot(g *Graph) string {
	var b strings.Builder
	b.WriteString("digraph cfg {\n")
	for _, n := range g.Nodes {
		label := fmt.Sprintf("P%d", n.ID)
		if n.IsLoopHead {
			label += " (loop head)"
		}
		shape := "ellipse"
		if n.ID == 0 {
			shape = "box"
		}
		fmt.Fprintf(&b, "  n%d [label=%q shape=%s];\n", n.ID, label, shape)
	}
	for _, n := range g.Nodes {
		for _, e := range n.Out {
			fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", e.Src, e.Dst, edgeLabel(e))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func edgeLabel(e *Edge) string {
	switch e.Kind {
	case KindSkip:
		return "skip"
	case KindAssign:
		return fmt.Sprintf("%s := %s", e.AssignName, e.AssignExpr.String())
	case KindGuard:
		if e.Negated {
			return fmt.Sprintf("!(%s)", e.Cond.String())
		}
		return e.Cond.String()
	default:
		return "?"
	}
}
