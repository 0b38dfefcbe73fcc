package parser

import (
	"regexp"

	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/reporter"
)

// Parser consumes a Lexer's token stream into an [ast.File]. It never
// stops at the first error: every parse function that fails reports a
// diagnostic and resynchronizes (usually by consuming one token) so the
// dispatch loop can keep going and surface as many problems as possible
// in one pass.
type Parser struct {
	lex     *Lexer
	handler *reporter.Handler
	file    *ast.File
}

// NewParser returns a Parser over src, reporting diagnostics to handler
// and building into a freshly seeded File named name.
func NewParser(name, src string, handler *reporter.Handler) *Parser {
	return &Parser{
		lex:     NewLexer(src, handler),
		handler: handler,
		file:    ast.NewFile(name),
	}
}

// ParseFile runs the parser to completion and returns the resulting
// File. Diagnostics, if any, are in the handler; the caller decides
// whether to continue to semantic analysis.
func ParseFile(name, src string, handler *reporter.Handler) *ast.File {
	p := NewParser(name, src, handler)
	p.parseFile()
	return p.file
}

func (p *Parser) cur() Token  { return p.lex.Current() }
func (p *Parser) next() Token { return p.lex.Consume() }

func (p *Parser) parseFile() {
	for {
		switch p.cur().Kind {
		case EOF:
			return
		case KwStruct:
			p.parseStructure()
		case KwVariant:
			p.parseVariant()
		case KwOpt:
			p.parseFileOption()
		default:
			tok := p.cur()
			p.handler.Add(reporter.UnexpectedToken(tok.Kind.String(), tok.Line, tok.Start, tok.End))
			p.next()
		}
	}
}

// expect checks the current token's kind, reporting mismatch with the
// supplied diagnostic constructor and otherwise consuming it. It never
// consumes on mismatch, so the caller keeps a recognizable token to
// resynchronize on.
func (p *Parser) expect(kind Kind, onMismatch func(found string, line, start, end int) *reporter.Report) (Token, bool) {
	tok := p.cur()
	if tok.Kind != kind {
		p.handler.Add(onMismatch(tok.Kind.String(), tok.Line, tok.Start, tok.End))
		return tok, false
	}
	p.next()
	return tok, true
}

func (p *Parser) parseIdentifier() (string, bool) {
	tok, ok := p.expect(Ident, reporter.ExpectedIdentifier)
	if !ok {
		return "", false
	}
	return tok.Text, true
}

// parseStructure parses `struct Name { ... }`.
func (p *Parser) parseStructure() {
	p.next() // consume 'struct'

	name, ok := p.parseIdentifier()
	if !ok {
		return
	}
	if !isPascalCase(name) {
		p.handler.Add(reporter.InvalidDataTypeIdentifierCase(name))
	}

	s := ast.NewStructure()
	s.SetIdentifier(ast.IdentifierFrom(name))

	if !p.parseBody(s, s) {
		return
	}

	p.file.AddStructure(s)
}

// parseVariant parses `variant Name { ... }`.
func (p *Parser) parseVariant() {
	p.next() // consume 'variant'

	name, ok := p.parseIdentifier()
	if !ok {
		return
	}
	if !isPascalCase(name) {
		p.handler.Add(reporter.InvalidDataTypeIdentifierCase(name))
	}

	v := ast.NewVariant()
	v.SetIdentifier(ast.IdentifierFrom(name))

	if !p.parseBody(v, v) {
		return
	}

	p.file.AddVariant(v)
}

// parseBody parses the `{ item* }` shared by structures and variants:
// `var` field declarations and `opt` option declarations, in any order.
func (p *Parser) parseBody(fielded ast.Fielded, optioned ast.Optioned) bool {
	if p.cur().Kind != LCurly {
		tok := p.cur()
		if tok.Kind == EOF {
			p.handler.Add(reporter.MissingBody(tok.Line, tok.Start))
		} else {
			p.handler.Add(reporter.ExpectedBodyOpen(tok.Kind.String(), tok.Line, tok.Start, tok.End))
		}
		return false
	}
	p.next() // consume '{'

	for {
		switch p.cur().Kind {
		case RCurly:
			p.next()
			return true
		case EOF:
			tok := p.cur()
			p.handler.Add(reporter.ExpectedBodyClose(tok.Kind.String(), tok.Line, tok.Start, tok.End))
			return false
		case KwVar:
			p.parseField(fielded)
		case KwOpt:
			p.parseOption(optioned)
		default:
			tok := p.cur()
			p.handler.Add(reporter.UnexpectedToken(tok.Kind.String(), tok.Line, tok.Start, tok.End))
			p.next()
		}
	}
}

// parseField parses `var name : Type ;`.
func (p *Parser) parseField(fielded ast.Fielded) {
	p.next() // consume 'var'

	name, ok := p.parseIdentifier()
	if !ok {
		return
	}
	if !isSnakeCase(name) {
		p.handler.Add(reporter.InvalidFieldIdentifierCase(name))
	}

	if _, ok := p.expect(Colon, func(found string, line, start, end int) *reporter.Report {
		return reporter.ExpectedColon(found, line, start, end)
	}); !ok {
		return
	}

	typeName, ok := p.parseIdentifier()
	if !ok {
		return
	}

	if _, ok := p.expect(Semicolon, func(found string, line, start, end int) *reporter.Report {
		return reporter.ExpectedSemicolon(found, line, start, end)
	}); !ok {
		return
	}

	f := ast.NewField()
	f.SetIdentifier(ast.IdentifierFrom(name))
	f.Reference().Set(typeName)
	fielded.AddField(f)
}

// parseFileOption parses a file-level `opt name ...;` the same way
// parseOption does for a structure/variant, differing only in which
// Optioned it folds into.
func (p *Parser) parseFileOption() {
	p.parseOption(p.file)
}

// parseOption parses the three accepted shapes:
//
//	opt name;                 -- bare, folds to a single Null arg
//	opt name = expr;          -- one arg
//	opt name(expr, expr...);  -- N args
func (p *Parser) parseOption(optioned ast.Optioned) {
	p.next() // consume 'opt'

	name, ok := p.parseIdentifier()
	if !ok {
		return
	}

	var args []*ast.Expression

	switch p.cur().Kind {
	case Semicolon:
		p.next()
		args = []*ast.Expression{ast.ValueExpr(ast.NullValue())}

	case Eq:
		p.next()
		expr, ok := p.parseExpression()
		if !ok {
			return
		}
		if _, ok := p.expect(Semicolon, func(found string, line, start, end int) *reporter.Report {
			return reporter.ExpectedSemicolon(found, line, start, end)
		}); !ok {
			return
		}
		args = []*ast.Expression{expr}

	case LParen:
		p.next()
		for {
			expr, ok := p.parseExpression()
			if !ok {
				return
			}
			args = append(args, expr)
			if p.cur().Kind == Comma {
				p.next()
				continue
			}
			break
		}
		if _, ok := p.expect(RParen, func(found string, line, start, end int) *reporter.Report {
			return reporter.ExpectedRParen(found, line, start, end)
		}); !ok {
			return
		}
		if _, ok := p.expect(Semicolon, func(found string, line, start, end int) *reporter.Report {
			return reporter.ExpectedSemicolon(found, line, start, end)
		}); !ok {
			return
		}

	default:
		tok := p.cur()
		p.handler.Add(reporter.ExpectedEqual(tok.Kind.String(), tok.Line, tok.Start, tok.End))
		return
	}

	optioned.AddOption(name, args)
}

// Expression parsing: precedence-climbing over seven levels, tightest
// first. Each level function falls through to the next on no match.

func (p *Parser) parseExpression() (*ast.Expression, bool) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (*ast.Expression, bool) {
	left, ok := p.parseLogicalAnd()
	if !ok {
		return nil, false
	}
	for p.cur().Kind == Pipe2 {
		p.next()
		right, ok := p.parseLogicalAnd()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, ast.LogicalOr, right)
	}
	return left, true
}

func (p *Parser) parseLogicalAnd() (*ast.Expression, bool) {
	left, ok := p.parseEquality()
	if !ok {
		return nil, false
	}
	for p.cur().Kind == Amp2 {
		p.next()
		right, ok := p.parseEquality()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, ast.LogicalAnd, right)
	}
	return left, true
}

func (p *Parser) parseEquality() (*ast.Expression, bool) {
	left, ok := p.parseRelational()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case Eq2:
			op = ast.Equal
		case NEq:
			op = ast.NotEqual
		default:
			return left, true
		}
		p.next()
		right, ok := p.parseRelational()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, op, right)
	}
}

func (p *Parser) parseRelational() (*ast.Expression, bool) {
	left, ok := p.parseAdditive()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case RAngle:
			op = ast.GreaterThan
		case GtEq:
			op = ast.GreaterThanEqual
		case LAngle:
			op = ast.LessThan
		case LtEq:
			op = ast.LessThanEqual
		default:
			return left, true
		}
		p.next()
		right, ok := p.parseAdditive()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, op, right)
	}
}

func (p *Parser) parseAdditive() (*ast.Expression, bool) {
	left, ok := p.parseMultiplicative()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case Plus:
			op = ast.Addition
		case Minus:
			op = ast.Subtraction
		default:
			return left, true
		}
		p.next()
		right, ok := p.parseMultiplicative()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, op, right)
	}
}

func (p *Parser) parseMultiplicative() (*ast.Expression, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case Star:
			op = ast.Multiplication
		case Slash:
			op = ast.Division
		case Percent:
			op = ast.Modulo
		default:
			return left, true
		}
		p.next()
		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpr(left, op, right)
	}
}

func (p *Parser) parseUnary() (*ast.Expression, bool) {
	switch p.cur().Kind {
	case Minus:
		p.next()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return ast.UnaryExpr(ast.Negation, operand), true
	case Plus:
		p.next()
		return p.parseUnary()
	case Bang:
		p.next()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return ast.UnaryExpr(ast.LogicalNot, operand), true
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (*ast.Expression, bool) {
	tok := p.cur()
	switch tok.Kind {
	case KwNull:
		p.next()
		return ast.ValueExpr(ast.NullValue()), true
	case KwTrue:
		p.next()
		return ast.ValueExpr(ast.TrueValue()), true
	case KwFalse:
		p.next()
		return ast.ValueExpr(ast.FalseValue()), true
	case Integer:
		p.next()
		return ast.ValueExpr(ast.IntegerValue(tok.IntValue)), true
	case Real:
		p.next()
		return ast.ValueExpr(ast.RealValue(tok.RealValue)), true
	case StringLit:
		p.next()
		return p.parseStringConcat(tok.Text)
	case Ident:
		p.next()
		if p.cur().Kind == LParen {
			p.next()
			var args []*ast.Expression
			if p.cur().Kind != RParen {
				for {
					arg, ok := p.parseExpression()
					if !ok {
						return nil, false
					}
					args = append(args, arg)
					if p.cur().Kind == Comma {
						p.next()
						continue
					}
					break
				}
			}
			if _, ok := p.expect(RParen, func(found string, line, start, end int) *reporter.Report {
				return reporter.ExpectedRParen(found, line, start, end)
			}); !ok {
				return nil, false
			}
			return ast.CallExpr(tok.Text, args), true
		}
		return ast.VariableExpr(tok.Text), true
	case LParen:
		p.next()
		inner, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(RParen, func(found string, line, start, end int) *reporter.Report {
			return reporter.ExpectedRParen(found, line, start, end)
		}); !ok {
			return nil, false
		}
		return inner, true
	default:
		p.handler.Add(reporter.ExpectedFieldType(tok.Kind.String(), tok.Line, tok.Start, tok.End))
		return nil, false
	}
}

// parseStringConcat folds adjacent string literals at parse time:
// `"a" "b"` lexes as two StringLit tokens and concatenates to "ab".
func (p *Parser) parseStringConcat(first string) (*ast.Expression, bool) {
	value := first
	for p.cur().Kind == StringLit {
		value += p.cur().Text
		p.next()
	}
	return ast.ValueExpr(ast.LiteralValue(value)), true
}

// dataTypeIdentifierPattern and fieldIdentifierPattern are the exact
// case regexes structure/variant names and their fields must match: a
// capitalized word run with no separators for the former, an
// underscore-separated run of lowercase words with no doubled or
// trailing underscore for the latter.
var (
	dataTypeIdentifierPattern = regexp.MustCompile(`^[A-Z][a-z]*(?:[A-Z][a-z]*|[0-9]+)*$`)
	fieldIdentifierPattern    = regexp.MustCompile(`^[a-z][a-z0-9]*(?:_[a-z0-9]+)*$`)
)

func isPascalCase(name string) bool {
	return dataTypeIdentifierPattern.MatchString(name)
}

func isSnakeCase(name string) bool {
	return fieldIdentifierPattern.MatchString(name)
}
