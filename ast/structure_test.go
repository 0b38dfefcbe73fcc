package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructureFieldsAndMinSize(t *testing.T) {
	s := NewStructure()
	s.SetIdentifier(IdentifierFrom("Point"))

	f1 := NewField()
	f1.SetIdentifier(IdentifierFrom("x"))
	s.AddField(f1)

	f2 := NewField()
	f2.SetIdentifier(IdentifierFrom("y"))
	s.AddField(f2)

	assert.Len(t, s.Fields(), 2)

	got, ok := s.Field(0)
	assert.True(t, ok)
	assert.Equal(t, "x", got.Identifier().Get())

	_, ok = s.Field(2)
	assert.False(t, ok)

	s.UpdateMinSize(4)
	s.UpdateMinSize(4)
	assert.Equal(t, 8, s.MinSize())
}

func TestStructureMessageBufferCodecShorthandEnablesBoth(t *testing.T) {
	s := NewStructure()
	s.AddOption("message_buffer", []*Expression{ValueExpr(NullValue())})

	reader, writer := s.MessageBufferCodec()
	assert.True(t, reader)
	assert.True(t, writer)
}

func TestStructureMessageBufferCodecTwoArgumentFormSetsIndependently(t *testing.T) {
	s := NewStructure()
	s.AddOption("message_buffer", []*Expression{
		ValueExpr(TrueValue()),
		ValueExpr(FalseValue()),
	})

	reader, writer := s.MessageBufferCodec()
	assert.True(t, reader)
	assert.False(t, writer)
}

func TestStructureJSONCodecDisabledWhenOptionAbsent(t *testing.T) {
	s := NewStructure()
	reader, writer := s.JSONCodec()
	assert.False(t, reader)
	assert.False(t, writer)
}
