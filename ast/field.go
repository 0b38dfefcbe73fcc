package ast

// Field is a named, typed member of a structure or variant. Order is
// significant: both wire formats and the generated accessor order follow
// declaration order.
type Field struct {
	identifier Identifier
	reference  Reference
}

// NewField returns an empty field, named and typed by later parser calls.
func NewField() *Field {
	return &Field{identifier: NewIdentifier(), reference: NewReference()}
}

func (f *Field) Identifier() Identifier      { return f.identifier }
func (f *Field) SetIdentifier(id Identifier) { f.identifier = id }

func (f *Field) Reference() *Reference { return &f.reference }

// Fielded is implemented by both Structure and Variant: both own an
// ordered list of fields and a running minimal wire size. Modeling the
// capability as an interface lets the parser's field/body parsing accept
// either owner without duplicating itself.
type Fielded interface {
	Fields() []*Field
	AddField(f *Field)
	Field(i int) (*Field, bool)

	// MinSize is the fixed byte footprint of the type's header region on
	// the wire: the sum of field sizes for a structure, the max of field
	// sizes plus the discriminant width for a variant.
	MinSize() int
	// UpdateMinSize folds in a dependency's resolved size once semantic
	// analysis has computed it: additive for structures, max for
	// variants.
	UpdateMinSize(size int)
}
