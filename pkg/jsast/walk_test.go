package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkSetsParents(t *testing.T) {
	left := Path("module", "exports")
	assign := Assign(left, Num("1"))
	stmt := ExprStmt(assign)
	root := Link(Program(stmt))

	assert.Nil(t, root.Parent)
	assert.Same(t, root, stmt.Parent)
	assert.Same(t, stmt, assign.Parent)
	assert.Same(t, assign, left.Parent)
	assert.Same(t, left, left.Object.Parent)
	assert.Same(t, left, left.Property.Parent)
}

func TestWalkOrder(t *testing.T) {
	root := Link(Program(
		ExprStmt(Assign(Ident("a"), Num("1"))),
		Return(Null()),
	))

	var kinds []Kind
	Walk(root, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	assert.Equal(t, []Kind{
		KindProgram,
		KindExpressionStatement,
		KindAssignmentExpression,
		KindIdentifier,
		KindLiteral,
		KindReturnStatement,
		KindLiteral,
	}, kinds)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := Program(ExprStmt(Assign(Ident("a"), Num("1"))))

	var visited int
	Walk(root, func(n *Node) bool {
		visited++
		return n.Kind != KindExpressionStatement
	})
	assert.Equal(t, 2, visited)
}

func TestInspectEnterLeave(t *testing.T) {
	root := Program(Return(nil))

	var events []string
	Inspect(root,
		func(n *Node) { events = append(events, "enter "+string(n.Kind)) },
		func(n *Node) { events = append(events, "leave "+string(n.Kind)) },
	)
	assert.Equal(t, []string{
		"enter Program",
		"enter ReturnStatement",
		"leave ReturnStatement",
		"leave Program",
	}, events)
}

func TestAncestors(t *testing.T) {
	id := Ident("x")
	ret := Return(id)
	fn := Func("f", ret)
	root := Link(Program(fn))

	chain := Ancestors(id)
	require.Len(t, chain, 4)
	assert.Same(t, ret, chain[0])
	assert.Equal(t, KindBlockStatement, chain[1].Kind)
	assert.Same(t, fn, chain[2])
	assert.Same(t, root, chain[3])
	assert.Nil(t, Ancestors(nil))
}

func TestNodePredicates(t *testing.T) {
	assert.True(t, Null().IsNullLiteral())
	assert.False(t, Str("null").IsNullLiteral())
	assert.True(t, Ident("undefined").IsIdentifier("undefined"))
	assert.True(t, Str("use strict").IsStringLiteral("use strict"))
	assert.False(t, Num("1").IsStringLiteral("1"))
	assert.True(t, Func("f").IsFunction())

	var nilNode *Node
	assert.False(t, nilNode.Is(KindLiteral))
	assert.False(t, nilNode.IsFunction())
	assert.Nil(t, nilNode.Children())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count(Path("a", "b")))
	assert.Equal(t, 0, Count(nil))
}
