package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/token"
)

// converter maps tree-sitter concrete syntax onto ESTree-shaped jsast nodes.
type converter struct {
	src []byte
}

// skippedTypes are grammar nodes whose subtrees carry no runtime semantics.
var skippedTypes = map[string]bool{
	"comment":                   true,
	"hash_bang_line":            true,
	"type_annotation":           true,
	"type_arguments":            true,
	"type_parameters":           true,
	"type_alias_declaration":    true,
	"interface_declaration":     true,
	"ambient_declaration":       true,
	"abstract_method_signature": true,
	"implements_clause":         true,
	"accessibility_modifier":    true,
}

func (c *converter) convert(n *sitter.Node) *jsast.Node {
	if n == nil || n.IsMissing() {
		return nil
	}
	typ := n.Type()
	if skippedTypes[typ] {
		return nil
	}

	switch typ {
	case "program", "statement_block", "class_body":
		return c.convertBlockLike(n)
	case "expression_statement":
		return c.convertExpressionStatement(n)
	case "variable_declaration", "lexical_declaration":
		return c.convertDeclaration(n)
	case "variable_declarator":
		return c.convertDeclarator(n)
	case "return_statement":
		return c.convertReturn(n)
	case "if_statement":
		return c.convertIf(n)
	case "else_clause":
		return c.convert(firstNamed(n))
	case "switch_statement":
		return c.convertSwitch(n)
	case "switch_case", "switch_default":
		return c.convertSwitchCase(n)
	case "function_declaration", "generator_function_declaration":
		return c.convertFunction(n, jsast.KindFunctionDeclaration)
	case "function", "function_expression", "generator_function":
		return c.convertFunction(n, jsast.KindFunctionExpression)
	case "arrow_function":
		return c.convertArrow(n)
	case "class_declaration", "abstract_class_declaration":
		return c.convertClass(n, jsast.KindClassDeclaration)
	case "class":
		return c.convertClass(n, jsast.KindClassExpression)
	case "method_definition":
		return c.convertMethod(n)
	case "for_statement":
		return c.convertFor(n)
	case "for_in_statement":
		return c.convertForIn(n)
	}

	if expr := c.convertExpression(n); expr != nil {
		return expr
	}
	return c.convertUnknown(n)
}

// convertUnknown keeps the named children of constructs the rules don't model,
// so that nested expressions are still visited.
func (c *converter) convertUnknown(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindUnknown)
	node.Type = n.Type()
	node.Extra = c.convertNamedChildren(n)
	return node
}

func (c *converter) convertNamedChildren(n *sitter.Node) []*jsast.Node {
	var out []*jsast.Node
	for _, child := range namedChildren(n) {
		if conv := c.convert(child); conv != nil {
			out = append(out, conv)
		}
	}
	return out
}

func (c *converter) newNode(n *sitter.Node, kind jsast.Kind) *jsast.Node {
	return &jsast.Node{
		Kind: kind,
		Pos:  startPos(n),
		End:  endPos(n),
	}
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.src)
}

// namedChildren returns the named children of n, excluding comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// hasToken reports whether n has a direct anonymous child with the given text.
func hasToken(n *sitter.Node, tok string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && !child.IsNamed() && child.Type() == tok {
			return true
		}
	}
	return false
}

func startPos(n *sitter.Node) token.Position {
	p := n.StartPoint()
	return token.Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1, Offset: int(n.StartByte())}
}

func endPos(n *sitter.Node) token.Position {
	p := n.EndPoint()
	return token.Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1, Offset: int(n.EndByte())}
}
