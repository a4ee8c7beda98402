package lang

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"pinterval/internal/ast"
)

// ToAST lowers a parsed Program into the domain-neutral statement tree that
// the CFG builder consumes.
func ToAST(p *Program) ast.Stmt {
	return stmtToAST(p.Stmt)
}

func posOf(p lexer.Position) ast.Pos {
	return ast.Pos{Line: p.Line, Column: p.Column}
}

func stmtToAST(s *Stmt) ast.Stmt {
	simple := simpleToAST(s.Simple)
	if s.Next != nil {
		return &ast.Seq{Pos: posOf(s.Pos), First: simple, Second: stmtToAST(s.Next)}
	}
	return simple
}

func simpleToAST(s *SimpleStmt) ast.Stmt {
	switch {
	case s.Assign != nil:
		return &ast.Assign{
			Pos:   posOf(s.Assign.Pos),
			Name:  s.Assign.Name,
			Value: aexprToAST(s.Assign.Value),
		}
	case s.Skip != nil:
		return &ast.Skip{Pos: posOf(s.Skip.Pos)}
	case s.If != nil:
		return &ast.If{
			Pos:  posOf(s.If.Pos),
			Cond: bexprToAST(s.If.Cond),
			Then: stmtToAST(s.If.Then),
			Else: stmtToAST(s.If.Else),
		}
	case s.While != nil:
		return &ast.While{
			Pos:  posOf(s.While.Pos),
			Cond: bexprToAST(s.While.Cond),
			Body: stmtToAST(s.While.Body),
		}
	}
	panic("lang: unreachable simple statement kind")
}

func aexprToAST(a *AExpr) ast.AExpr {
	left := termToAST(a.Left)
	for _, op := range a.Ops {
		kind := ast.AAdd
		if op.Op == "-" {
			kind = ast.ASub
		}
		left = &ast.ABin{Pos: posOf(op.Pos), Op: kind, Left: left, Right: termToAST(op.Right)}
	}
	return left
}

func termToAST(t *Term) ast.AExpr {
	left := factorToAST(t.Left)
	for _, op := range t.Ops {
		kind := ast.AMul
		if op.Op == "/" {
			kind = ast.ADiv
		}
		left = &ast.ABin{Pos: posOf(op.Pos), Op: kind, Left: left, Right: factorToAST(op.Right)}
	}
	return left
}

func factorToAST(f *Factor) ast.AExpr {
	switch {
	case f.Number != nil:
		return &ast.ANum{Pos: posOf(f.Pos), Value: parseNumeral(*f.Number)}
	case f.Ident != nil:
		return &ast.AVar{Pos: posOf(f.Pos), Name: *f.Ident}
	case f.Sub != nil:
		return aexprToAST(f.Sub)
	}
	panic("lang: unreachable factor kind")
}

// parseNumeral converts a numeral's digit text into an int64, saturating to
// math.MaxInt64 if the literal itself overflows a 64-bit signed integer
// (spec.md §7: concrete overflow saturates in the abstract arithmetic, and
// a numeral is never negative in the grammar, so overflow is always toward
// +infinity).
func parseNumeral(text string) int64 {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return v
}

func bexprToAST(b *BExpr) ast.BExpr {
	left := batomToAST(b.Left)
	for _, r := range b.Ops {
		left = &ast.BAnd{Pos: posOf(b.Pos), Left: left, Right: batomToAST(r)}
	}
	return left
}

func batomToAST(a *BAtom) ast.BExpr {
	switch {
	case a.Not != nil:
		return &ast.BNot{Pos: posOf(a.Not.Pos), Inner: bexprToAST(a.Not.Cond)}
	case a.True != nil:
		return &ast.BTrue{Pos: posOf(a.True.Pos)}
	case a.False != nil:
		return &ast.BFalse{Pos: posOf(a.False.Pos)}
	case a.Rel != nil:
		op := ast.REq
		if a.Rel.Op == "<=" {
			op = ast.RLeq
		}
		return &ast.BRel{
			Pos:   posOf(a.Rel.Pos),
			Op:    op,
			Left:  aexprToAST(a.Rel.Left),
			Right: aexprToAST(a.Rel.Right),
		}
	}
	panic(fmt.Sprintf("lang: unreachable bool atom at %v", a.Pos))
}
