package lang

import "github.com/alecthomas/participle/v2/lexer"

// Program is a parsed While source file: a single (possibly sequenced)
// statement, per spec.md's grammar:
//
//	S ::= x := a | skip | S1 ; S2
//	    | if b then S1 else S2 fi | while b do S done
type Program struct {
	Pos  lexer.Position
	Stmt *Stmt `@@`
}

// Stmt is a right-recursive statement sequence, matching the teacher's
// "recurse on S1, then on S2" composition idiom for ';'.
type Stmt struct {
	Pos    lexer.Position
	Simple *SimpleStmt `@@`
	Next   *Stmt       `( ";" @@ )?`
}

// SimpleStmt is one non-sequencing statement form.
type SimpleStmt struct {
	Pos    lexer.Position
	Assign *AssignStmt `  @@`
	Skip   *SkipStmt   `| @@`
	If     *IfStmt     `| @@`
	While  *WhileStmt  `| @@`
}

type AssignStmt struct {
	Pos   lexer.Position
	Name  string `@Ident ":="`
	Value *AExpr `@@`
}

type SkipStmt struct {
	Pos lexer.Position
	Tok string `@"skip"`
}

type IfStmt struct {
	Pos    lexer.Position
	Cond   *BExpr `"if" @@`
	Then   *Stmt  `"then" @@`
	Else   *Stmt  `"else" @@`
	FiWord string `"fi"`
}

type WhileStmt struct {
	Pos     lexer.Position
	Cond    *BExpr `"while" @@`
	Body    *Stmt  `"do" @@`
	DoneWrd string `"done"`
}

// AExpr is a + / - chain of Terms, left-associative.
type AExpr struct {
	Pos  lexer.Position
	Left *Term    `@@`
	Ops  []*AddOp `{ @@ }`
}

type AddOp struct {
	Pos   lexer.Position
	Op    string `@("+" | "-")`
	Right *Term  `@@`
}

// Term is a * / / chain of Factors, left-associative.
type Term struct {
	Pos  lexer.Position
	Left *Factor  `@@`
	Ops  []*MulOp `{ @@ }`
}

type MulOp struct {
	Pos   lexer.Position
	Op    string  `@("*" | "/")`
	Right *Factor `@@`
}

type Factor struct {
	Pos    lexer.Position
	Number *string `  @Int`
	Ident  *string `| @Ident`
	Sub    *AExpr  `| "(" @@ ")"`
}

// BExpr is a "&" chain of BAtoms, left-associative.
type BExpr struct {
	Pos  lexer.Position
	Left *BAtom   `@@`
	Ops  []*BAtom `{ "&" @@ }`
}

// BAtom mirrors the original parser's parse_atom_bexp: "!" recurses into a
// *full* BExpr (so "!" binds looser than "&" in the grammar, matching the
// source's recursive-descent structure exactly), and a bare comparison.
type BAtom struct {
	Pos   lexer.Position
	Not   *NotExpr `  @@`
	True  *TrueLit `| @@`
	False *FalseLit `| @@`
	Rel   *RelExpr `| @@`
}

type NotExpr struct {
	Pos  lexer.Position
	Cond *BExpr `"!" @@`
}

type TrueLit struct {
	Pos lexer.Position
	Val string `@"true"`
}

type FalseLit struct {
	Pos lexer.Position
	Val string `@"false"`
}

type RelExpr struct {
	Pos   lexer.Position
	Left  *AExpr `@@`
	Op    string `@("=" | "<=")`
	Right *AExpr `@@`
}
