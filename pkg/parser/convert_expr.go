package parser

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/fplint/pkg/jsast"
)

// convertExpression converts expression nodes. It returns nil for grammar
// types it does not model so the caller can fall back to an Unknown node.
func (c *converter) convertExpression(n *sitter.Node) *jsast.Node {
	switch n.Type() {
	case "identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern", "private_property_identifier",
		"statement_identifier", "type_identifier":
		node := c.newNode(n, jsast.KindIdentifier)
		node.Name = c.text(n)
		return node
	case "undefined":
		node := c.newNode(n, jsast.KindIdentifier)
		node.Name = "undefined"
		return node
	case "this":
		return c.newNode(n, jsast.KindThisExpression)
	case "super":
		return c.newNode(n, jsast.KindSuper)
	case "null":
		return c.literal(n, jsast.LiteralNull, "null")
	case "true", "false":
		return c.literal(n, jsast.LiteralBoolean, n.Type())
	case "number":
		return c.literal(n, jsast.LiteralNumber, c.text(n))
	case "string":
		return c.literal(n, jsast.LiteralString, c.cookString(n))
	case "regex":
		return c.literal(n, jsast.LiteralRegExp, c.text(n))
	case "template_string":
		return c.convertTemplate(n)
	case "parenthesized_expression":
		return c.convert(firstNamed(n))
	case "member_expression":
		node := c.newNode(n, jsast.KindMemberExpression)
		node.Object = c.convert(n.ChildByFieldName("object"))
		node.Property = c.convert(n.ChildByFieldName("property"))
		return node
	case "subscript_expression":
		node := c.newNode(n, jsast.KindMemberExpression)
		node.Object = c.convert(n.ChildByFieldName("object"))
		node.Property = c.convert(n.ChildByFieldName("index"))
		node.Computed = true
		return node
	case "assignment_expression":
		node := c.newNode(n, jsast.KindAssignmentExpression)
		node.Operator = "="
		node.Left = c.convert(n.ChildByFieldName("left"))
		node.Right = c.convert(n.ChildByFieldName("right"))
		return node
	case "augmented_assignment_expression":
		node := c.newNode(n, jsast.KindAssignmentExpression)
		node.Operator = c.text(n.ChildByFieldName("operator"))
		node.Left = c.convert(n.ChildByFieldName("left"))
		node.Right = c.convert(n.ChildByFieldName("right"))
		return node
	case "update_expression":
		node := c.newNode(n, jsast.KindUpdateExpression)
		op := n.ChildByFieldName("operator")
		node.Operator = c.text(op)
		node.Argument = c.convert(n.ChildByFieldName("argument"))
		node.Prefix = op != nil && op.StartByte() == n.StartByte()
		return node
	case "unary_expression":
		node := c.newNode(n, jsast.KindUnaryExpression)
		node.Operator = c.text(n.ChildByFieldName("operator"))
		node.Argument = c.convert(n.ChildByFieldName("argument"))
		node.Prefix = true
		return node
	case "binary_expression":
		return c.convertBinary(n)
	case "ternary_expression":
		node := c.newNode(n, jsast.KindConditionalExpression)
		node.Test = c.convert(n.ChildByFieldName("condition"))
		node.Then = c.convert(n.ChildByFieldName("consequence"))
		node.Else = c.convert(n.ChildByFieldName("alternative"))
		return node
	case "call_expression":
		node := c.newNode(n, jsast.KindCallExpression)
		node.Callee = c.convert(n.ChildByFieldName("function"))
		node.Arguments = c.convertArguments(n.ChildByFieldName("arguments"))
		return node
	case "new_expression":
		node := c.newNode(n, jsast.KindNewExpression)
		node.Callee = c.convert(n.ChildByFieldName("constructor"))
		node.Arguments = c.convertArguments(n.ChildByFieldName("arguments"))
		return node
	case "sequence_expression":
		node := c.newNode(n, jsast.KindSequenceExpression)
		node.Expressions = c.flattenSequence(n, nil)
		return node
	case "object":
		node := c.newNode(n, jsast.KindObjectExpression)
		for _, child := range namedChildren(n) {
			if prop := c.convertProperty(child); prop != nil {
				node.Properties = append(node.Properties, prop)
			}
		}
		return node
	case "array":
		node := c.newNode(n, jsast.KindArrayExpression)
		node.Elements = c.convertNamedChildren(n)
		return node
	}
	return nil
}

func (c *converter) literal(n *sitter.Node, kind jsast.LiteralKind, value string) *jsast.Node {
	node := c.newNode(n, jsast.KindLiteral)
	node.LiteralKind = kind
	node.Value = value
	node.Raw = c.text(n)
	return node
}

func (c *converter) convertBinary(n *sitter.Node) *jsast.Node {
	op := c.text(n.ChildByFieldName("operator"))
	kind := jsast.KindBinaryExpression
	switch op {
	case "&&", "||", "??":
		kind = jsast.KindLogicalExpression
	}
	node := c.newNode(n, kind)
	node.Operator = op
	node.Left = c.convert(n.ChildByFieldName("left"))
	node.Right = c.convert(n.ChildByFieldName("right"))
	return node
}

// convertArguments handles both argument lists and the template of a tagged template.
func (c *converter) convertArguments(n *sitter.Node) []*jsast.Node {
	if n == nil {
		return nil
	}
	if n.Type() != "arguments" {
		if arg := c.convert(n); arg != nil {
			return []*jsast.Node{arg}
		}
		return nil
	}
	return c.convertNamedChildren(n)
}

// flattenSequence collects the operands of a (possibly nested) comma expression.
func (c *converter) flattenSequence(n *sitter.Node, out []*jsast.Node) []*jsast.Node {
	for _, child := range namedChildren(n) {
		if child.Type() == "sequence_expression" {
			out = c.flattenSequence(child, out)
			continue
		}
		if conv := c.convert(child); conv != nil {
			out = append(out, conv)
		}
	}
	return out
}

func (c *converter) convertProperty(n *sitter.Node) *jsast.Node {
	switch n.Type() {
	case "pair":
		node := c.newNode(n, jsast.KindProperty)
		node.Key, node.Computed = c.convertKey(n.ChildByFieldName("key"))
		node.ValueNode = c.convert(n.ChildByFieldName("value"))
		return node
	case "shorthand_property_identifier":
		node := c.newNode(n, jsast.KindProperty)
		node.Key = c.convert(n)
		node.ValueNode = c.convert(n)
		return node
	case "method_definition":
		return c.convertMethod(n)
	}
	return c.convert(n)
}

func (c *converter) convertTemplate(n *sitter.Node) *jsast.Node {
	node := c.newNode(n, jsast.KindTemplateLiteral)
	node.Raw = c.text(n)
	for _, child := range namedChildren(n) {
		if child.Type() != "template_substitution" {
			continue
		}
		if expr := c.convert(firstNamed(child)); expr != nil {
			node.Expressions = append(node.Expressions, expr)
		}
	}
	return node
}

// cookString returns the runtime value of a string literal.
func (c *converter) cookString(n *sitter.Node) string {
	var b strings.Builder
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "string_fragment":
			b.WriteString(c.text(child))
		case "escape_sequence":
			b.WriteString(unescape(c.text(child)))
		}
	}
	return b.String()
}

func unescape(seq string) string {
	switch seq {
	case `\'`:
		return "'"
	case `\"`:
		return `"`
	}
	if s, err := strconv.Unquote(`"` + seq + `"`); err == nil {
		return s
	}
	if strings.HasPrefix(seq, "\\\n") || strings.HasPrefix(seq, "\\\r") {
		return ""
	}
	return strings.TrimPrefix(seq, `\`)
}
