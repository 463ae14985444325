package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/fplint/pkg/jsast"
)

func (c *converter) convertBlockLike(n *sitter.Node) *jsast.Node {
	kind := jsast.KindBlockStatement
	switch n.Type() {
	case "program":
		kind = jsast.KindProgram
	case "class_body":
		kind = jsast.KindClassBody
	}

	node := c.newNode(n, kind)
	node.Statements = c.convertNamedChildren(n)
	if kind != jsast.KindClassBody {
		markDirectives(node.Statements)
	}
	return node
}

// markDirectives flags the directive prologue: leading string-literal statements.
func markDirectives(stmts []*jsast.Node) {
	for _, stmt := range stmts {
		if !stmt.Is(jsast.KindExpressionStatement) {
			return
		}
		expr := stmt.Expr
		if !expr.Is(jsast.KindLiteral) || expr.LiteralKind != jsast.LiteralString {
			return
		}
		stmt.Directive = expr.Value
	}
}

func (c *converter) convertExpressionStatement(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindExpressionStatement)
	node.Expr = c.convert(firstNamed(n))
	return node
}

func (c *converter) convertDeclaration(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindVariableDeclaration)
	node.Variant = jsast.VariantVar
	if n.Type() == "lexical_declaration" {
		if kind := n.ChildByFieldName("kind"); kind != nil {
			node.Variant = c.text(kind)
		} else if n.ChildCount() > 0 {
			node.Variant = c.text(n.Child(0))
		}
	}

	for _, child := range namedChildren(n) {
		if child.Type() != "variable_declarator" {
			continue
		}
		node.Declarations = append(node.Declarations, c.convertDeclarator(child))
	}
	return node
}

func (c *converter) convertDeclarator(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindVariableDeclarator)
	node.ID = c.convert(n.ChildByFieldName("name"))
	node.Init = c.convert(n.ChildByFieldName("value"))
	return node
}

// convertFor keeps a for loop as an opaque node. The grammar wraps its
// initializer and condition in expression statements; those are unwrapped so
// the loop header does not read as standalone statements.
func (c *converter) convertFor(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindUnknown)
	node.Type = n.Type()
	for _, child := range namedChildren(n) {
		if child.Type() == "expression_statement" {
			child = firstNamed(child)
		}
		if conv := c.convert(child); conv != nil {
			node.Extra = append(node.Extra, conv)
		}
	}
	return node
}

// convertForIn keeps for-in and for-of loops opaque. A declared binding
// (`for (let x of xs)`) becomes a VariableDeclaration with a single declarator
// whose Init is only set by the legacy `for (var x = 1 in o)` form.
func (c *converter) convertForIn(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindUnknown)
	node.Type = n.Type()

	left := n.ChildByFieldName("left")
	if kind := forBindingKind(n); kind != "" && left != nil {
		decl := c.newNode(n, jsast.KindVariableDeclaration)
		decl.Variant = kind
		declarator := c.newNode(left, jsast.KindVariableDeclarator)
		declarator.ID = c.convert(left)
		declarator.Init = c.convert(n.ChildByFieldName("value"))
		decl.Declarations = []*jsast.Node{declarator}
		if kindNode := n.ChildByFieldName("kind"); kindNode != nil {
			decl.Pos = startPos(kindNode)
		}
		decl.End = declarator.End
		node.Extra = append(node.Extra, decl)
	} else if conv := c.convert(left); conv != nil {
		node.Extra = append(node.Extra, conv)
	}

	for _, field := range []string{"right", "body"} {
		if conv := c.convert(n.ChildByFieldName(field)); conv != nil {
			node.Extra = append(node.Extra, conv)
		}
	}
	return node
}

// forBindingKind returns var, let or const when the loop declares its binding.
func forBindingKind(n *sitter.Node) string {
	if kind := n.ChildByFieldName("kind"); kind != nil {
		return kind.Type()
	}
	for _, tok := range []string{jsast.VariantVar, jsast.VariantLet, jsast.VariantConst} {
		if hasToken(n, tok) {
			return tok
		}
	}
	return ""
}

func (c *converter) convertReturn(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindReturnStatement)
	node.Argument = c.convert(firstNamed(n))
	return node
}

func (c *converter) convertIf(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindIfStatement)
	node.Test = c.convert(n.ChildByFieldName("condition"))
	node.Then = c.convert(n.ChildByFieldName("consequence"))
	node.Else = c.convert(n.ChildByFieldName("alternative"))
	return node
}

func (c *converter) convertSwitch(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindSwitchStatement)
	node.Discriminant = c.convert(n.ChildByFieldName("value"))
	for _, child := range namedChildren(n.ChildByFieldName("body")) {
		switch child.Type() {
		case "switch_case", "switch_default":
			node.Cases = append(node.Cases, c.convertSwitchCase(child))
		}
	}
	return node
}

func (c *converter) convertSwitchCase(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindSwitchCase)
	value := n.ChildByFieldName("value")
	if n.Type() == "switch_case" {
		node.Test = c.convert(value)
	}

	for _, child := range namedChildren(n) {
		if value != nil && sameNode(child, value) {
			continue
		}
		if stmt := c.convert(child); stmt != nil {
			node.Consequent = append(node.Consequent, stmt)
		}
	}
	return node
}

func (c *converter) convertFunction(n *sitter.Node, kind jsast.Kind) *jsast.Node {
	node := c.newNode(n, kind)
	node.ID = c.convert(n.ChildByFieldName("name"))
	node.Params = c.convertNamedChildren(n.ChildByFieldName("parameters"))
	node.Body = c.convert(n.ChildByFieldName("body"))
	return node
}

func (c *converter) convertArrow(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindArrowFunctionExpression)
	if param := n.ChildByFieldName("parameter"); param != nil {
		node.Params = []*jsast.Node{c.convert(param)}
	} else {
		node.Params = c.convertNamedChildren(n.ChildByFieldName("parameters"))
	}

	body := n.ChildByFieldName("body")
	node.Body = c.convert(body)
	node.Expression = body != nil && body.Type() != "statement_block"
	return node
}

func (c *converter) convertClass(n *sitter.Node, kind jsast.Kind) *jsast.Node {
	node := c.newNode(n, kind)
	node.ID = c.convert(n.ChildByFieldName("name"))
	node.Body = c.convert(n.ChildByFieldName("body"))

	for _, child := range namedChildren(n) {
		if child.Type() == "class_heritage" {
			node.SuperClass = c.convertHeritage(child)
			break
		}
	}
	return node
}

// convertHeritage returns the superclass expression. TypeScript wraps it in an
// extends_clause next to an implements_clause.
func (c *converter) convertHeritage(n *sitter.Node) *jsast.Node {
	for _, child := range namedChildren(n) {
		if child.Type() == "extends_clause" {
			if value := child.ChildByFieldName("value"); value != nil {
				return c.convert(value)
			}
			return c.convert(firstNamed(child))
		}
	}
	for _, child := range namedChildren(n) {
		if conv := c.convert(child); conv != nil {
			return conv
		}
	}
	return nil
}

func (c *converter) convertMethod(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindMethodDefinition)
	name := n.ChildByFieldName("name")
	node.Key, node.Computed = c.convertKey(name)
	node.Static = hasToken(n, "static")

	switch {
	case c.text(name) == "constructor" && !node.Static:
		node.Variant = jsast.VariantConstructor
	case hasToken(n, "get"):
		node.Variant = jsast.VariantGet
	case hasToken(n, "set"):
		node.Variant = jsast.VariantSet
	default:
		node.Variant = jsast.VariantMethod
	}

	fn := c.newNode(n, jsast.KindFunctionExpression)
	fn.Params = c.convertNamedChildren(n.ChildByFieldName("parameters"))
	fn.Body = c.convert(n.ChildByFieldName("body"))
	node.ValueNode = fn
	return node
}

// convertKey converts a property or method key, unwrapping computed names.
func (c *converter) convertKey(n *sitter.Node) (*jsast.Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Type() == "computed_property_name" {
		return c.convert(firstNamed(n)), true
	}
	return c.convert(n), false
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
