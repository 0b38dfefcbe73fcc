package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantMinSizeTracksMaxFieldSize(t *testing.T) {
	v := NewVariant()
	v.UpdateMinSize(4)
	v.UpdateMinSize(1)
	v.UpdateMinSize(8)

	assert.Equal(t, 10, v.MinSize()) // max(4, 1, 8) + 2-byte discriminant
}

func TestVariantTagIsOneBasedDeclarationOrder(t *testing.T) {
	v := NewVariant()
	v.AddField(NewField())
	v.AddField(NewField())
	v.AddField(NewField())

	assert.Equal(t, 1, v.Tag(0))
	assert.Equal(t, 2, v.Tag(1))
	assert.Equal(t, 3, v.Tag(2))
}

func TestVariantFieldLookup(t *testing.T) {
	v := NewVariant()
	f := NewField()
	f.SetIdentifier(IdentifierFrom("asInt"))
	v.AddField(f)

	got, ok := v.Field(0)
	assert.True(t, ok)
	assert.Equal(t, "asInt", got.Identifier().Get())

	_, ok = v.Field(1)
	assert.False(t, ok)
}
