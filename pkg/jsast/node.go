// Package jsast defines the JavaScript syntax tree consumed by the lint engine.
//
// The tree follows ESTree naming. Every node is a single Node value whose Kind
// selects which of its fields are meaningful; consumers dispatch with a switch
// over Kind rather than through type assertions.
//
// Parent links are non-owning upward references populated once by Link after
// the tree is built. Nothing in the lint engine writes to a tree.
package jsast

import "github.com/leapstack-labs/fplint/pkg/token"

// Kind is the discriminant identifying a node's syntactic category.
type Kind string

// Node kinds, named after their ESTree counterparts.
const (
	KindProgram                 Kind = "Program"
	KindLiteral                 Kind = "Literal"
	KindIdentifier              Kind = "Identifier"
	KindTemplateLiteral         Kind = "TemplateLiteral"
	KindThisExpression          Kind = "ThisExpression"
	KindSuper                   Kind = "Super"
	KindMemberExpression        Kind = "MemberExpression"
	KindAssignmentExpression    Kind = "AssignmentExpression"
	KindUpdateExpression        Kind = "UpdateExpression"
	KindUnaryExpression         Kind = "UnaryExpression"
	KindBinaryExpression        Kind = "BinaryExpression"
	KindLogicalExpression       Kind = "LogicalExpression"
	KindConditionalExpression   Kind = "ConditionalExpression"
	KindCallExpression          Kind = "CallExpression"
	KindNewExpression           Kind = "NewExpression"
	KindSequenceExpression      Kind = "SequenceExpression"
	KindObjectExpression        Kind = "ObjectExpression"
	KindProperty                Kind = "Property"
	KindArrayExpression         Kind = "ArrayExpression"
	KindFunctionDeclaration     Kind = "FunctionDeclaration"
	KindFunctionExpression      Kind = "FunctionExpression"
	KindArrowFunctionExpression Kind = "ArrowFunctionExpression"
	KindClassDeclaration        Kind = "ClassDeclaration"
	KindClassExpression         Kind = "ClassExpression"
	KindClassBody               Kind = "ClassBody"
	KindMethodDefinition        Kind = "MethodDefinition"
	KindVariableDeclaration     Kind = "VariableDeclaration"
	KindVariableDeclarator      Kind = "VariableDeclarator"
	KindBlockStatement          Kind = "BlockStatement"
	KindExpressionStatement     Kind = "ExpressionStatement"
	KindReturnStatement         Kind = "ReturnStatement"
	KindIfStatement             Kind = "IfStatement"
	KindSwitchStatement         Kind = "SwitchStatement"
	KindSwitchCase              Kind = "SwitchCase"

	// KindUnknown covers constructs the rules never inspect (loops, imports,
	// JSX, type annotations...). Their children are still walked.
	KindUnknown Kind = "Unknown"
)

// LiteralKind distinguishes literal value types.
type LiteralKind int

// Literal value types.
const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
	LiteralNull
	LiteralRegExp
)

// Variable declaration and method variants (the ESTree "kind" field).
const (
	VariantVar         = "var"
	VariantLet         = "let"
	VariantConst       = "const"
	VariantConstructor = "constructor"
	VariantMethod      = "method"
	VariantGet         = "get"
	VariantSet         = "set"
)

// Node is one element of the syntax tree.
//
// Field usage by kind:
//
//	Identifier               Name
//	Literal                  LiteralKind, Value, Raw
//	MemberExpression         Object, Property, Computed
//	AssignmentExpression     Operator, Left, Right
//	UpdateExpression         Operator, Argument, Prefix
//	UnaryExpression          Operator, Argument
//	Binary/LogicalExpression Operator, Left, Right
//	ConditionalExpression    Test, Then, Else
//	Call/NewExpression       Callee, Arguments
//	SequenceExpression       Expressions
//	ObjectExpression         Properties
//	Property                 Key, ValueNode, Computed
//	ArrayExpression          Elements
//	Function kinds           ID, Params, Body, Expression (arrow with expression body)
//	Class kinds              ID, SuperClass, Body
//	ClassBody                Statements (method and field definitions)
//	MethodDefinition         Key, ValueNode, Variant, Static
//	VariableDeclaration      Variant, Declarations
//	VariableDeclarator       ID, Init
//	Program/BlockStatement   Statements
//	ExpressionStatement      Expr, Directive
//	ReturnStatement          Argument
//	IfStatement              Test, Then, Else
//	SwitchStatement          Discriminant, Cases
//	SwitchCase               Test (nil for default), Consequent
//	Unknown                  Type, Extra
type Node struct {
	Kind Kind
	Pos  token.Position
	End  token.Position

	// Parent is the syntactic parent, nil for the root. Never an ownership edge.
	Parent *Node

	Name        string
	LiteralKind LiteralKind
	Value       string
	Raw         string
	Operator    string
	Variant     string
	Directive   string
	Type        string // source grammar node type for KindUnknown
	Computed    bool
	Prefix      bool
	Static      bool
	Expression  bool

	Left         *Node
	Right        *Node
	Object       *Node
	Property     *Node
	Argument     *Node
	Callee       *Node
	Test         *Node
	Then         *Node
	Else         *Node
	ID           *Node
	Init         *Node
	Key          *Node
	Body         *Node
	SuperClass   *Node
	Discriminant *Node
	Expr         *Node // ExpressionStatement.expression

	Arguments    []*Node
	Params       []*Node
	Statements   []*Node
	Declarations []*Node
	Cases        []*Node
	Consequent   []*Node
	Expressions  []*Node
	Properties   []*Node
	Elements     []*Node
	Extra        []*Node

	// ValueNode holds Property.value and MethodDefinition.value.
	ValueNode *Node
}

// Is reports whether n is non-nil and of kind k.
func (n *Node) Is(k Kind) bool {
	return n != nil && n.Kind == k
}

// IsFunction reports whether n is any function-like node.
func (n *Node) IsFunction() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		return true
	}
	return false
}

// IsNullLiteral reports whether n is the literal null.
func (n *Node) IsNullLiteral() bool {
	return n.Is(KindLiteral) && n.LiteralKind == LiteralNull
}

// IsIdentifier reports whether n is an Identifier named name.
func (n *Node) IsIdentifier(name string) bool {
	return n.Is(KindIdentifier) && n.Name == name
}

// IsStringLiteral reports whether n is a string Literal with the given value.
func (n *Node) IsStringLiteral(value string) bool {
	return n.Is(KindLiteral) && n.LiteralKind == LiteralString && n.Value == value
}

// Children returns the direct children of n in source order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	add := func(nodes ...*Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch n.Kind {
	case KindMemberExpression:
		add(n.Object, n.Property)
	case KindAssignmentExpression, KindBinaryExpression, KindLogicalExpression:
		add(n.Left, n.Right)
	case KindUpdateExpression, KindUnaryExpression, KindReturnStatement:
		add(n.Argument)
	case KindConditionalExpression, KindIfStatement:
		add(n.Test, n.Then, n.Else)
	case KindCallExpression, KindNewExpression:
		add(n.Callee)
		add(n.Arguments...)
	case KindSequenceExpression:
		add(n.Expressions...)
	case KindObjectExpression:
		add(n.Properties...)
	case KindProperty, KindMethodDefinition:
		add(n.Key, n.ValueNode)
	case KindArrayExpression:
		add(n.Elements...)
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		add(n.ID)
		add(n.Params...)
		add(n.Body)
	case KindClassDeclaration, KindClassExpression:
		add(n.ID, n.SuperClass, n.Body)
	case KindVariableDeclaration:
		add(n.Declarations...)
	case KindVariableDeclarator:
		add(n.ID, n.Init)
	case KindProgram, KindBlockStatement, KindClassBody:
		add(n.Statements...)
	case KindExpressionStatement:
		add(n.Expr)
	case KindSwitchStatement:
		add(n.Discriminant)
		add(n.Cases...)
	case KindSwitchCase:
		add(n.Test)
		add(n.Consequent...)
	case KindTemplateLiteral:
		add(n.Expressions...)
	case KindUnknown:
		add(n.Extra...)
	}
	return out
}
