package ast

import "fmt"

func (n *ANum) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *AVar) String() string { return n.Name }

func (n *ABin) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op.String(), n.Right.String())
}

func (n *BTrue) String() string  { return "true" }
func (n *BFalse) String() string { return "false" }

func (n *BNot) String() string {
	return fmt.Sprintf("!%s", n.Inner.String())
}

func (n *BAnd) String() string {
	return fmt.Sprintf("(%s & %s)", n.Left.String(), n.Right.String())
}

func (n *BRel) String() string {
	return fmt.Sprintf("%s %s %s", n.Left.String(), n.Op.String(), n.Right.String())
}

func (n *Skip) String() string { return "skip" }

func (n *Assign) String() string {
	return fmt.Sprintf("%s := %s", n.Name, n.Value.String())
}

func (n *Seq) String() string {
	return fmt.Sprintf("%s; %s", n.First.String(), n.Second.String())
}

func (n *If) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", n.Cond.String(), n.Then.String(), n.Else.String())
}

func (n *While) String() string {
	return fmt.Sprintf("while %s do %s done", n.Cond.String(), n.Body.String())
}

// Vars appends every distinct variable name referenced anywhere in stmt to
// seen (preserving first-occurrence order), per the spec's "collected once
// from the whole program" rule for the variable table.
func Vars(s Stmt, seen *[]string, index map[string]bool) {
	add := func(name string) {
		if !index[name] {
			index[name] = true
			*seen = append(*seen, name)
		}
	}
	var walkA func(AExpr)
	walkA = func(a AExpr) {
		switch e := a.(type) {
		case *ANum:
		case *AVar:
			add(e.Name)
		case *ABin:
			walkA(e.Left)
			walkA(e.Right)
		}
	}
	var walkB func(BExpr)
	walkB = func(b BExpr) {
		switch e := b.(type) {
		case *BTrue, *BFalse:
		case *BNot:
			walkB(e.Inner)
		case *BAnd:
			walkB(e.Left)
			walkB(e.Right)
		case *BRel:
			walkA(e.Left)
			walkA(e.Right)
		}
	}
	var walkS func(Stmt)
	walkS = func(s Stmt) {
		switch e := s.(type) {
		case *Skip:
		case *Assign:
			add(e.Name)
			walkA(e.Value)
		case *Seq:
			walkS(e.First)
			walkS(e.Second)
		case *If:
			walkB(e.Cond)
			walkS(e.Then)
			walkS(e.Else)
		case *While:
			walkB(e.Cond)
			walkS(e.Body)
		}
	}
	walkS(s)
}
