package jsast

// Constructors for hand-built trees. Parser adapters and tests use these;
// call Link on the finished root to populate parent references.

// Ident returns an Identifier node.
func Ident(name string) *Node {
	return &Node{Kind: KindIdentifier, Name: name}
}

// Str returns a string Literal node.
func Str(value string) *Node {
	return &Node{Kind: KindLiteral, LiteralKind: LiteralString, Value: value, Raw: `"` + value + `"`}
}

// Num returns a number Literal node.
func Num(raw string) *Node {
	return &Node{Kind: KindLiteral, LiteralKind: LiteralNumber, Value: raw, Raw: raw}
}

// Null returns the null Literal node.
func Null() *Node {
	return &Node{Kind: KindLiteral, LiteralKind: LiteralNull, Value: "null", Raw: "null"}
}

// This returns a ThisExpression node.
func This() *Node {
	return &Node{Kind: KindThisExpression}
}

// Member returns a dot-style MemberExpression.
func Member(object *Node, property string) *Node {
	return &Node{Kind: KindMemberExpression, Object: object, Property: Ident(property)}
}

// Index returns a bracket-style (computed) MemberExpression.
func Index(object, property *Node) *Node {
	return &Node{Kind: KindMemberExpression, Object: object, Property: property, Computed: true}
}

// Path builds a dotted member chain, e.g. Path("a", "b", "c") for a.b.c.
func Path(root string, props ...string) *Node {
	n := Ident(root)
	for _, p := range props {
		n = Member(n, p)
	}
	return n
}

// Assign returns an AssignmentExpression with operator "=".
func Assign(left, right *Node) *Node {
	return &Node{Kind: KindAssignmentExpression, Operator: "=", Left: left, Right: right}
}

// Binary returns a BinaryExpression.
func Binary(op string, left, right *Node) *Node {
	return &Node{Kind: KindBinaryExpression, Operator: op, Left: left, Right: right}
}

// Call returns a CallExpression.
func Call(callee *Node, args ...*Node) *Node {
	return &Node{Kind: KindCallExpression, Callee: callee, Arguments: args}
}

// ExprStmt wraps an expression in an ExpressionStatement.
func ExprStmt(expr *Node) *Node {
	return &Node{Kind: KindExpressionStatement, Expr: expr}
}

// Return returns a ReturnStatement; argument may be nil.
func Return(argument *Node) *Node {
	return &Node{Kind: KindReturnStatement, Argument: argument}
}

// Block returns a BlockStatement.
func Block(stmts ...*Node) *Node {
	return &Node{Kind: KindBlockStatement, Statements: stmts}
}

// Case returns a SwitchCase; a nil test makes it the default case.
func Case(test *Node, consequent ...*Node) *Node {
	return &Node{Kind: KindSwitchCase, Test: test, Consequent: consequent}
}

// Switch returns a SwitchStatement.
func Switch(discriminant *Node, cases ...*Node) *Node {
	return &Node{Kind: KindSwitchStatement, Discriminant: discriminant, Cases: cases}
}

// Func returns a FunctionDeclaration with a block body.
func Func(name string, body ...*Node) *Node {
	return &Node{Kind: KindFunctionDeclaration, ID: Ident(name), Body: Block(body...)}
}

// Program returns a Program root.
func Program(stmts ...*Node) *Node {
	return &Node{Kind: KindProgram, Statements: stmts}
}
