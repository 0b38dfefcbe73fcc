package reporter

import "fmt"

// The constructors below cover every diagnostic kind the lexer, parser,
// linker and option folder raise: unexpected/missing/expected token
// variants; missing body/braces; bad identifiers; undeclared/redefined
// types; cycles; invalid operands. Callers pass the raw line/span of the
// offending token rather than a token value, so this package does not
// need to depend on the parser package's token type.

// UnexpectedToken reports a token the parser's dispatch loop did not
// expect at all (the catch-all "skip one token" case).
func UnexpectedToken(kind string, line, start, end int) *Report {
	return withPos(fmt.Sprintf("unexpected token '%s'", kind), line, start, end)
}

func ExpectedSemicolon(kind string, line, start, end int) *Report {
	return withPos("expected semicolon ';', found '"+kind+"'", line, start, end)
}

func MissingSemicolon(line, offset int) *Report {
	return withOffset("missing semicolon ';'", line, offset)
}

func ExpectedColon(kind string, line, start, end int) *Report {
	return withPos("expected colon ':', found '"+kind+"'", line, start, end)
}

func MissingColon(line, offset int) *Report {
	return withOffset("missing colon ':'", line, offset)
}

func ExpectedEqual(kind string, line, start, end int) *Report {
	return withPos("expected equal '=', found '"+kind+"'", line, start, end)
}

func MissingEqual(line, offset int) *Report {
	return withOffset("missing equal '='", line, offset)
}

func ExpectedRParen(kind string, line, start, end int) *Report {
	return withPos("expected ')', found '"+kind+"'", line, start, end)
}

func ExpectedIdentifier(kind string, line, start, end int) *Report {
	return withPos("expected a valid identifier, found '"+kind+"'", line, start, end)
}

func MissingIdentifier(line, offset int) *Report {
	return withOffset("missing a valid identifier", line, offset)
}

func MissingBody(line, offset int) *Report {
	return withOffset("missing struct/variant body", line, offset)
}

func ExpectedBodyOpen(kind string, line, start, end int) *Report {
	return withPos("expected '{', found '"+kind+"'", line, start, end)
}

func ExpectedBodyClose(kind string, line, start, end int) *Report {
	return withPos("expected '}', found '"+kind+"'", line, start, end)
}

func ExpectedBinaryOperator(kind string, line, start, end int) *Report {
	return withPos("expected a binary operator (+, -, *, /, %, etc), found '"+kind+"'", line, start, end)
}

func ExpectedFieldType(kind string, line, start, end int) *Report {
	return withPos("expected a field type, found '"+kind+"'", line, start, end)
}

func MissingFieldType(line, offset int) *Report {
	return withOffset("missing field type", line, offset)
}

func ExpectedAliasDataType(kind string, line, start, end int) *Report {
	return withPos("expected an alias target type, found '"+kind+"'", line, start, end)
}

func MissingAliasDataType(line, offset int) *Report {
	return withOffset("missing alias target type", line, offset)
}

func InvalidIntegerLiteral(text string, line, start, end int) *Report {
	return withPos(fmt.Sprintf("integer literal %q is out of range", text), line, start, end)
}

func InvalidRealLiteral(text string, line, start, end int) *Report {
	return withPos(fmt.Sprintf("real literal %q is malformed or out of range", text), line, start, end)
}

// Semantic-analysis diagnostics are not tied to a token; the offending
// name carries enough context.

func InvalidDataTypeIdentifierCase(name string) *Report {
	return noPos(fmt.Sprintf("data type identifier %q should use PascalCase", name))
}

func InvalidFieldIdentifierCase(name string) *Report {
	return noPos(fmt.Sprintf("field identifier %q should use snake_case", name))
}

func UndeclaredDataType(name string) *Report {
	return noPos(fmt.Sprintf("use of undeclared data type %q", name))
}

func RedefinedDataType(name string) *Report {
	return noPos(fmt.Sprintf("redefinition of data type %q", name))
}

func RedefinedField(name string) *Report {
	return noPos(fmt.Sprintf("redefinition of field %q", name))
}

func CyclicalDependency(names []string) *Report {
	msg := "cyclical dependency between the types "
	for i, n := range names {
		if i > 0 {
			msg += ", "
		}
		msg += n
	}
	return noPos(msg)
}

func InvalidUnaryOperand(op string, operand fmt.Stringer) *Report {
	return noPos(fmt.Sprintf("invalid %s operation on %s", op, operand))
}

func InvalidBinaryOperands(op string, left, right fmt.Stringer) *Report {
	return noPos(fmt.Sprintf("invalid %s operation between %s and %s", op, left, right))
}
