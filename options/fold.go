// Package options folds every option-argument expression attached to a
// File, Structure or Variant down to a literal [ast.Value] in place.
// Folding runs after linking so the few expression forms that reference
// declared names (currently none do — "variable" and "call" expressions
// are accepted by the grammar but have no defined evaluation rule yet
// and are rejected here) have a fully resolved file to check against.
package options

import (
	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/reporter"
)

// Fold walks every option attached to f and to each of f's
// structures/variants, replacing each argument expression with its
// folded [ast.ExprValue] form. Folding failures (an operator applied to
// an operand type it doesn't support, or an unevaluable variable/call
// expression) are reported and the offending expression folds to Null —
// callers must check handler.HasErrors() before trusting the result.
func Fold(f *ast.File, handler *reporter.Handler) {
	foldOptionMap(f.Options(), handler)
	for _, dt := range f.DataTypes() {
		if o := dt.Optioned(); o != nil {
			foldOptionMap(o.Options(), handler)
		}
	}
}

func foldOptionMap(options ast.OptionMap, handler *reporter.Handler) {
	for name, args := range options {
		for i, arg := range args {
			args[i] = fold(arg, handler)
		}
		options[name] = args
	}
}

// fold evaluates expr down to an ExprValue node. Already-folded value
// expressions are returned unchanged.
func fold(expr *ast.Expression, handler *reporter.Handler) *ast.Expression {
	if expr == nil {
		return ast.ValueExpr(ast.NullValue())
	}
	switch expr.Kind {
	case ast.ExprValue:
		return expr

	case ast.ExprVariable:
		handler.Add(reporter.InternalError("unevaluable variable reference in option expression: " + expr.Name))
		return ast.ValueExpr(ast.NullValue())

	case ast.ExprCall:
		handler.Add(reporter.InternalError("unevaluable call expression in option expression: " + expr.Name))
		return ast.ValueExpr(ast.NullValue())

	case ast.ExprUnary:
		operand := fold(expr.Operand, handler).AsValue()
		return ast.ValueExpr(foldUnary(expr.Op, operand, handler))

	case ast.ExprBinary:
		left := fold(expr.Left, handler).AsValue()
		right := fold(expr.Right, handler).AsValue()
		return ast.ValueExpr(foldBinary(expr.BinOp, left, right, handler))

	default:
		panic("schemac: unhandled expression kind")
	}
}

func foldUnary(op ast.UnaryOp, operand ast.Value, handler *reporter.Handler) ast.Value {
	switch op {
	case ast.Negation:
		switch operand.Kind {
		case ast.ValueInteger:
			return ast.IntegerValue(-operand.Int)
		case ast.ValueReal:
			return ast.RealValue(-operand.Real)
		default:
			handler.Add(reporter.InvalidUnaryOperand(op.String(), operand))
			return ast.NullValue()
		}

	case ast.LogicalNot:
		if operand.IsTrue() {
			return ast.FalseValue()
		}
		if operand.IsFalse() {
			return ast.TrueValue()
		}
		handler.Add(reporter.InvalidUnaryOperand(op.String(), operand))
		return ast.NullValue()

	default:
		panic("schemac: unhandled unary operator")
	}
}

// numeric reports whether v is an Integer or Real and returns its value
// promoted to float64, so arithmetic can be implemented once and the
// result narrowed back to Integer only when both operands were integers.
func numeric(v ast.Value) (float64, bool) {
	switch v.Kind {
	case ast.ValueInteger:
		return float64(v.Int), true
	case ast.ValueReal:
		return v.Real, true
	default:
		return 0, false
	}
}

func bothInteger(l, r ast.Value) bool {
	return l.Kind == ast.ValueInteger && r.Kind == ast.ValueInteger
}

func foldBinary(op ast.BinaryOp, left, right ast.Value, handler *reporter.Handler) ast.Value {
	switch op {
	case ast.Addition:
		// A literal on either side stringifies the other operand and
		// concatenates, not just Literal + Literal.
		if left.Kind == ast.ValueLiteral {
			return ast.LiteralValue(left.Literal + right.String())
		}
		if right.Kind == ast.ValueLiteral {
			return ast.LiteralValue(left.String() + right.Literal)
		}
		return foldArithmetic(op, left, right, handler)

	case ast.Subtraction, ast.Multiplication, ast.Division, ast.Modulo:
		return foldArithmetic(op, left, right, handler)

	case ast.Equal, ast.NotEqual:
		return foldEquality(op, left, right, handler)

	case ast.GreaterThan, ast.GreaterThanEqual, ast.LessThan, ast.LessThanEqual:
		return foldRelational(op, left, right, handler)

	case ast.LogicalAnd, ast.LogicalOr:
		return foldLogical(op, left, right, handler)

	default:
		panic("schemac: unhandled binary operator")
	}
}

func foldArithmetic(op ast.BinaryOp, left, right ast.Value, handler *reporter.Handler) ast.Value {
	lf, lok := numeric(left)
	rf, rok := numeric(right)
	if !lok || !rok {
		handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
		return ast.NullValue()
	}

	if bothInteger(left, right) {
		l, r := left.Int, right.Int
		switch op {
		case ast.Addition:
			return ast.IntegerValue(l + r)
		case ast.Subtraction:
			return ast.IntegerValue(l - r)
		case ast.Multiplication:
			return ast.IntegerValue(l * r)
		case ast.Division:
			if r == 0 {
				handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
				return ast.NullValue()
			}
			return ast.IntegerValue(l / r)
		case ast.Modulo:
			if r == 0 {
				handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
				return ast.NullValue()
			}
			return ast.IntegerValue(l % r)
		}
	}

	switch op {
	case ast.Addition:
		return ast.RealValue(lf + rf)
	case ast.Subtraction:
		return ast.RealValue(lf - rf)
	case ast.Multiplication:
		return ast.RealValue(lf * rf)
	case ast.Division:
		return ast.RealValue(lf / rf)
	case ast.Modulo:
		handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
		return ast.NullValue()
	}
	panic("schemac: unhandled arithmetic operator")
}

func foldEquality(op ast.BinaryOp, left, right ast.Value, handler *reporter.Handler) ast.Value {
	equal, ok := valuesEqual(left, right)
	if !ok {
		handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
		return ast.NullValue()
	}
	if op == ast.NotEqual {
		equal = !equal
	}
	if equal {
		return ast.TrueValue()
	}
	return ast.FalseValue()
}

func valuesEqual(left, right ast.Value) (bool, bool) {
	if lf, lok := numeric(left); lok {
		if rf, rok := numeric(right); rok {
			return lf == rf, true
		}
	}
	if left.Kind == ast.ValueLiteral && right.Kind == ast.ValueLiteral {
		return left.Literal == right.Literal, true
	}
	if (left.Kind == ast.ValueTrue || left.Kind == ast.ValueFalse) &&
		(right.Kind == ast.ValueTrue || right.Kind == ast.ValueFalse) {
		return left.Kind == right.Kind, true
	}
	return false, false
}

func foldRelational(op ast.BinaryOp, left, right ast.Value, handler *reporter.Handler) ast.Value {
	lf, lok := numeric(left)
	rf, rok := numeric(right)
	if !lok || !rok {
		handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
		return ast.NullValue()
	}

	var result bool
	switch op {
	case ast.GreaterThan:
		result = lf > rf
	case ast.GreaterThanEqual:
		result = lf >= rf
	case ast.LessThan:
		result = lf < rf
	case ast.LessThanEqual:
		result = lf <= rf
	}
	if result {
		return ast.TrueValue()
	}
	return ast.FalseValue()
}

func foldLogical(op ast.BinaryOp, left, right ast.Value, handler *reporter.Handler) ast.Value {
	if (left.Kind != ast.ValueTrue && left.Kind != ast.ValueFalse) ||
		(right.Kind != ast.ValueTrue && right.Kind != ast.ValueFalse) {
		handler.Add(reporter.InvalidBinaryOperands(op.String(), left, right))
		return ast.NullValue()
	}

	var result bool
	switch op {
	case ast.LogicalAnd:
		result = left.IsTrue() && right.IsTrue()
	case ast.LogicalOr:
		result = left.IsTrue() || right.IsTrue()
	}
	if result {
		return ast.TrueValue()
	}
	return ast.FalseValue()
}
