package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pinterval/internal/ast"
)

func assignX(v int64) ast.Stmt {
	return &ast.Assign{Name: "x", Value: &ast.ANum{Value: v}}
}

func TestSingleAssignHasEntryAndTerminal(t *testing.T) {
	g := Build(assignX(5))
	assert.Len(t, g.Nodes, 2)
	assert.Equal(t, KindAssign, g.Nodes[0].Out[0].Kind)
	assert.Equal(t, 1, g.Nodes[0].Out[0].Dst)
	assert.Equal(t, []int{0}, g.Nodes[1].Preds)
}

func TestSeqChainsNodesInOrder(t *testing.T) {
	prog := &ast.Seq{First: assignX(1), Second: assignX(2)}
	g := Build(prog)
	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, 1, g.Nodes[0].Out[0].Dst)
	assert.Equal(t, 2, g.Nodes[1].Out[0].Dst)
}

func TestIfProducesGuardNodeWithTwoEdgesAndMergingTails(t *testing.T) {
	prog := &ast.If{
		Cond: &ast.BTrue{},
		Then: assignX(1),
		Else: assignX(2),
	}
	g := Build(prog)
	// node 0: guard, node 1: then-assign, node 2: else-assign, node 3: terminal
	assert.Len(t, g.Nodes, 4)
	assert.Len(t, g.Nodes[0].Out, 2)
	assert.False(t, g.Nodes[0].Out[0].Negated)
	assert.True(t, g.Nodes[0].Out[1].Negated)
	assert.ElementsMatch(t, []int{1, 2}, g.Nodes[3].Preds)
}

func TestWhileAtEntryGetsSyntheticSkipBeforeLoopHead(t *testing.T) {
	prog := &ast.While{Cond: &ast.BTrue{}, Body: assignX(1)}
	g := Build(prog)
	// node 0: synthetic skip, node 1: loop head, node 2: body assign, node 3: terminal
	assert.Len(t, g.Nodes, 4)
	assert.False(t, g.Nodes[0].IsLoopHead)
	assert.Equal(t, KindSkip, g.Nodes[0].Out[0].Kind)
	assert.True(t, g.Nodes[1].IsLoopHead)
	assert.Len(t, g.Nodes[1].Out, 2)
}

func TestWhileNotAtEntryNeedsNoSyntheticSkip(t *testing.T) {
	prog := &ast.Seq{
		First:  assignX(0),
		Second: &ast.While{Cond: &ast.BTrue{}, Body: assignX(1)},
	}
	g := Build(prog)
	// node 0: assign, node 1: loop head, node 2: body, node 3: terminal
	assert.Len(t, g.Nodes, 4)
	assert.False(t, g.Nodes[0].IsLoopHead)
	assert.True(t, g.Nodes[1].IsLoopHead)
}

func TestLoopHeadAlwaysHasExactlyTwoEdges(t *testing.T) {
	prog := &ast.While{Cond: &ast.BTrue{}, Body: assignX(1)}
	g := Build(prog)
	for _, n := range g.Nodes {
		if n.IsLoopHead {
			assert.Len(t, n.Out, 2)
		}
	}
}

func TestEveryNonEntryNodeHasAtLeastOnePredecessor(t *testing.T) {
	prog := &ast.If{Cond: &ast.BTrue{}, Then: assignX(1), Else: &ast.Skip{}}
	g := Build(prog)
	for i, n := range g.Nodes {
		if i == 0 {
			continue
		}
		assert.NotEmpty(t, n.Preds, "node %d must have a predecessor", i)
	}
}
