package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionAddAndLookup(t *testing.T) {
	s := NewStructure()

	added := s.AddOption("json", []*Expression{ValueExpr(TrueValue())})
	assert.True(t, added)

	args, ok := s.Option("json")
	assert.True(t, ok)
	assert.Len(t, args, 1)

	_, ok = s.Option("message_buffer")
	assert.False(t, ok)
}

func TestOptionAddOverwritesExisting(t *testing.T) {
	s := NewStructure()
	s.AddOption("json", []*Expression{ValueExpr(TrueValue())})
	added := s.AddOption("json", []*Expression{ValueExpr(FalseValue())})
	assert.False(t, added)

	args, _ := s.Option("json")
	assert.Equal(t, FalseValue(), args[0].AsValue())
}

func TestIsOptionEnabledWithoutArgumentsIsNotEnabled(t *testing.T) {
	s := NewStructure()
	s.AddOption("json", nil)
	assert.False(t, s.IsOptionEnabled("json")) // no argument at index 0
}

func TestIsOptionEnabledTrueAndNull(t *testing.T) {
	s := NewStructure()
	s.AddOption("json", []*Expression{ValueExpr(NullValue())})
	assert.True(t, s.IsOptionEnabled("json"))

	s.AddOption("message_buffer", []*Expression{ValueExpr(TrueValue())})
	assert.True(t, s.IsOptionEnabled("message_buffer"))

	s.AddOption("disabled", []*Expression{ValueExpr(FalseValue())})
	assert.False(t, s.IsOptionEnabled("disabled"))
}

func TestIsOptionEnabledAtIndexesMultiArgument(t *testing.T) {
	s := NewStructure()
	s.AddOption("message_buffer", []*Expression{
		ValueExpr(TrueValue()),
		ValueExpr(FalseValue()),
	})
	assert.True(t, s.IsOptionEnabledAt("message_buffer", 0))
	assert.False(t, s.IsOptionEnabledAt("message_buffer", 1))
	assert.False(t, s.IsOptionEnabledAt("message_buffer", 2))
}

func TestIsOptionEnabledUnfoldedExpressionIsNotEnabled(t *testing.T) {
	s := NewStructure()
	s.AddOption("cond", []*Expression{VariableExpr("x")})
	assert.False(t, s.IsOptionEnabled("cond"))
}
