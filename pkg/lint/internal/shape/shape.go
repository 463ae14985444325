// Package shape holds structural predicates shared by the fp rules.
//
// Every predicate tolerates missing fields and wrong node kinds by answering
// false; none of them walk further than a node's parent or its own subtree.
package shape

import "github.com/leapstack-labs/fplint/pkg/jsast"

// IsEqualityOperator reports whether op is ==, !=, === or !==.
func IsEqualityOperator(op string) bool {
	switch op {
	case "==", "!=", "===", "!==":
		return true
	}
	return false
}

// IsComparisonOperand reports whether n is a direct operand of an equality comparison.
func IsComparisonOperand(n *jsast.Node) bool {
	if n == nil {
		return false
	}
	p := n.Parent
	return p.Is(jsast.KindBinaryExpression) && IsEqualityOperator(p.Operator)
}

// IsUndefined reports whether n is the identifier undefined.
func IsUndefined(n *jsast.Node) bool {
	return n.IsIdentifier("undefined")
}

// IsUpdateOperator reports whether op is ++ or --.
func IsUpdateOperator(op string) bool {
	return op == "++" || op == "--"
}

// =============================================================================
// Functions
// =============================================================================

// HasBlockBody reports whether a function-like node has a block body.
func HasBlockBody(fn *jsast.Node) bool {
	return fn.IsFunction() && fn.Body.Is(jsast.KindBlockStatement)
}

// EndsWithReturn reports whether the last statement is a return statement.
func EndsWithReturn(stmts []*jsast.Node) bool {
	return len(stmts) > 0 && stmts[len(stmts)-1].Is(jsast.KindReturnStatement)
}

// IsConstructorFunction reports whether fn is the value of a class constructor.
func IsConstructorFunction(fn *jsast.Node) bool {
	if fn == nil {
		return false
	}
	p := fn.Parent
	return p.Is(jsast.KindMethodDefinition) && p.Variant == jsast.VariantConstructor
}

// IsDefaultCase reports whether c is a switch case without a test.
func IsDefaultCase(c *jsast.Node) bool {
	return c.Is(jsast.KindSwitchCase) && c.Test == nil
}

// LastCase returns the final case of a switch statement, or nil.
func LastCase(sw *jsast.Node) *jsast.Node {
	if !sw.Is(jsast.KindSwitchStatement) || len(sw.Cases) == 0 {
		return nil
	}
	return sw.Cases[len(sw.Cases)-1]
}

// IsValueReturn reports whether n is a return statement with an argument.
func IsValueReturn(n *jsast.Node) bool {
	return n.Is(jsast.KindReturnStatement) && n.Argument != nil
}

// DefaultCaseReturns reports whether a default case returns a value, either
// directly among its statements or as the final statement of a nested block.
func DefaultCaseReturns(c *jsast.Node) bool {
	if !IsDefaultCase(c) || len(c.Consequent) == 0 {
		return false
	}
	for _, stmt := range c.Consequent {
		if IsValueReturn(stmt) {
			return true
		}
		if stmt.Is(jsast.KindBlockStatement) && len(stmt.Statements) > 0 &&
			IsValueReturn(stmt.Statements[len(stmt.Statements)-1]) {
			return true
		}
	}
	return false
}

// IsSwitchDefaultReturn reports whether fn's body is a single switch statement
// whose last case is a default case that returns a value.
func IsSwitchDefaultReturn(fn *jsast.Node) bool {
	if !HasBlockBody(fn) || len(fn.Body.Statements) != 1 {
		return false
	}
	return DefaultCaseReturns(LastCase(fn.Body.Statements[0]))
}

// =============================================================================
// Expression statements
// =============================================================================

// HasSideEffect reports whether expr is an assignment, ++/-- update or delete.
func HasSideEffect(expr *jsast.Node) bool {
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case jsast.KindAssignmentExpression:
		return true
	case jsast.KindUpdateExpression:
		return IsUpdateOperator(expr.Operator)
	case jsast.KindUnaryExpression:
		return expr.Operator == "delete"
	}
	return false
}

// IsUseStrict reports whether expr is the "use strict" string literal.
func IsUseStrict(expr *jsast.Node) bool {
	return expr.IsStringLiteral("use strict")
}

// IsSuperCall reports whether expr calls the superclass constructor.
func IsSuperCall(expr *jsast.Node) bool {
	return expr.Is(jsast.KindCallExpression) && expr.Callee.Is(jsast.KindSuper)
}

// IsConsoleCall reports whether expr invokes a method of console, e.g. console.log(x).
func IsConsoleCall(expr *jsast.Node) bool {
	if !expr.Is(jsast.KindCallExpression) {
		return false
	}
	callee := expr.Callee
	return callee.Is(jsast.KindMemberExpression) && callee.Object.IsIdentifier("console")
}

// =============================================================================
// Modules and classes
// =============================================================================

// IsModuleExports reports whether n is the member access module.exports.
func IsModuleExports(n *jsast.Node) bool {
	return n.Is(jsast.KindMemberExpression) &&
		n.Object.IsIdentifier("module") &&
		n.Property.IsIdentifier("exports")
}

// IsCommonJSExport reports whether n is exports, module.exports, or a member
// chain rooted at either.
func IsCommonJSExport(n *jsast.Node) bool {
	for n != nil {
		if n.IsIdentifier("exports") || IsModuleExports(n) {
			return true
		}
		if !n.Is(jsast.KindMemberExpression) {
			return false
		}
		n = n.Object
	}
	return false
}

// ExtendsComponent reports whether a class extends Component, component, or
// a namespaced <Identifier>.Component such as React.Component.
func ExtendsComponent(class *jsast.Node) bool {
	if class == nil {
		return false
	}
	base := class.SuperClass
	if base.IsIdentifier("Component") || base.IsIdentifier("component") {
		return true
	}
	return base.Is(jsast.KindMemberExpression) &&
		!base.Computed &&
		base.Object.Is(jsast.KindIdentifier) &&
		base.Property.IsIdentifier("Component")
}

// IsObjectAssignCall reports whether call is Object.assign(...) or Object["assign"](...).
func IsObjectAssignCall(call *jsast.Node) bool {
	if !call.Is(jsast.KindCallExpression) {
		return false
	}
	callee := call.Callee
	if !callee.Is(jsast.KindMemberExpression) || !callee.Object.IsIdentifier("Object") {
		return false
	}
	if callee.Computed {
		return callee.Property.IsStringLiteral("assign")
	}
	return callee.Property.IsIdentifier("assign")
}
