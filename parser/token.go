// Package parser lexes and parses the schema description language into
// an [ast.File] tree. Diagnostics are reported through a
// [github.com/kralicky/schemac/reporter.Handler]; neither the lexer nor
// the parser ever panics or aborts early on bad input — each keeps
// producing tokens/declarations so a single run surfaces as many
// problems as possible.
package parser

// Kind is the closed set of token kinds the lexer produces.
type Kind int

const (
	EOF Kind = iota

	Ident
	Integer
	Real
	StringLit

	// Punctuation.
	Amp
	Amp2
	Bang
	Caret
	Colon
	Comma
	Dot
	Eq
	Eq2
	LAngle
	LtEq
	ShiftLeft
	RAngle
	GtEq
	ShiftRight
	LBrack
	RBrack
	LCurly
	RCurly
	LParen
	RParen
	Minus
	NEq
	Percent
	Pipe
	Pipe2
	Plus
	Question
	Semicolon
	Slash
	Star
	Tilde

	// Keywords.
	KwNull
	KwTrue
	KwFalse
	KwStruct
	KwVariant
	KwVar
	KwOpt
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case StringLit:
		return "string literal"
	case Amp:
		return "&"
	case Amp2:
		return "&&"
	case Bang:
		return "!"
	case Caret:
		return "^"
	case Colon:
		return ":"
	case Comma:
		return ","
	case Dot:
		return "."
	case Eq:
		return "="
	case Eq2:
		return "=="
	case LAngle:
		return "<"
	case LtEq:
		return "<="
	case ShiftLeft:
		return "<<"
	case RAngle:
		return ">"
	case GtEq:
		return ">="
	case ShiftRight:
		return ">>"
	case LBrack:
		return "["
	case RBrack:
		return "]"
	case LCurly:
		return "{"
	case RCurly:
		return "}"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Minus:
		return "-"
	case NEq:
		return "!="
	case Percent:
		return "%"
	case Pipe:
		return "|"
	case Pipe2:
		return "||"
	case Plus:
		return "+"
	case Question:
		return "?"
	case Semicolon:
		return ";"
	case Slash:
		return "/"
	case Star:
		return "*"
	case Tilde:
		return "~"
	case KwNull:
		return "null"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case KwStruct:
		return "struct"
	case KwVariant:
		return "variant"
	case KwVar:
		return "var"
	case KwOpt:
		return "opt"
	default:
		return "unknown token"
	}
}

var keywords = map[string]Kind{
	"null":    KwNull,
	"true":    KwTrue,
	"false":   KwFalse,
	"struct":  KwStruct,
	"variant": KwVariant,
	"var":     KwVar,
	"opt":     KwOpt,
}

// Token is a single lexed unit: its kind, the byte span it covers in the
// source, the 1-based line it starts on, and its raw source text.
// Integer and Real tokens additionally carry their parsed numeric value.
type Token struct {
	Kind  Kind
	Line  int
	Start int
	End   int
	Text  string

	IntValue  int64
	RealValue float64
}
