package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pinterval/internal/ast"
)

func TestParsesSimpleAssignment(t *testing.T) {
	prog, err := ParseSource("test.while", "x := 5")
	assert.NoError(t, err)
	stmt := ToAST(prog)
	assign, ok := stmt.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParsesSequencingRightAssociatively(t *testing.T) {
	prog, err := ParseSource("test.while", "x := 1; y := 2; z := 3")
	assert.NoError(t, err)
	stmt := ToAST(prog)
	seq, ok := stmt.(*ast.Seq)
	assert.True(t, ok)
	assert.Equal(t, "x", seq.First.(*ast.Assign).Name)
	nested, ok := seq.Second.(*ast.Seq)
	assert.True(t, ok, "sequencing must be right-associative")
	assert.Equal(t, "y", nested.First.(*ast.Assign).Name)
}

func TestArithmeticPrecedence(t *testing.T) {
	prog, err := ParseSource("test.while", "x := 1 + 2 * 3")
	assert.NoError(t, err)
	stmt := ToAST(prog)
	assign := stmt.(*ast.Assign)
	bin, ok := assign.Value.(*ast.ABin)
	assert.True(t, ok)
	assert.Equal(t, ast.AAdd, bin.Op)
	_, rightIsMul := bin.Right.(*ast.ABin)
	assert.True(t, rightIsMul)
}

func TestNotBindsLooserThanAnd(t *testing.T) {
	prog, err := ParseSource("test.while", "if ! x = 1 & y = 2 then skip else skip fi")
	assert.NoError(t, err)
	stmt := ToAST(prog)
	ifs := stmt.(*ast.If)
	not, ok := ifs.Cond.(*ast.BNot)
	assert.True(t, ok, "! must recurse into the full boolean expression, not just the next atom")
	_, innerIsAnd := not.Inner.(*ast.BAnd)
	assert.True(t, innerIsAnd)
}

func TestWhileLoopParses(t *testing.T) {
	prog, err := ParseSource("test.while", "x := 0; while x <= 9 do x := x + 1 done")
	assert.NoError(t, err)
	stmt := ToAST(prog)
	seq := stmt.(*ast.Seq)
	_, ok := seq.Second.(*ast.While)
	assert.True(t, ok)
}

func TestSyntaxErrorIsReported(t *testing.T) {
	_, err := ParseSource("test.while", "x := ")
	assert.Error(t, err)
}
