package ast

// Variant is a tagged union: an identifier, an ordered list of labelled
// cases (each a Field), and a per-type option map. Discriminant tag
// numbering starts at 1 in declaration order (see Field index -> Tag).
// Its MinSize tracks the maximum field size seen so far; MinSize()
// itself adds the two-byte discriminant.
type Variant struct {
	identifier Identifier
	fields     []*Field
	optioned
	maxFieldSize int
}

func NewVariant() *Variant {
	return &Variant{identifier: NewIdentifier(), optioned: newOptioned()}
}

func (v *Variant) Identifier() Identifier      { return v.identifier }
func (v *Variant) SetIdentifier(id Identifier) { v.identifier = id }

func (v *Variant) Fields() []*Field { return v.fields }

func (v *Variant) AddField(f *Field) { v.fields = append(v.fields, f) }

func (v *Variant) Field(i int) (*Field, bool) {
	if i < 0 || i >= len(v.fields) {
		return nil, false
	}
	return v.fields[i], true
}

// MinSize is the max of the resolved case sizes plus the two-byte
// discriminant.
func (v *Variant) MinSize() int { return v.maxFieldSize + 2 }

func (v *Variant) UpdateMinSize(size int) {
	if size > v.maxFieldSize {
		v.maxFieldSize = size
	}
}

// Tag returns the 1-based discriminant for the case at field index i,
// matching declaration order.
func (v *Variant) Tag(i int) int { return i + 1 }

func (v *Variant) MessageBufferCodec() (reader, writer bool) {
	return codecDirections(v, "message_buffer")
}

func (v *Variant) JSONCodec() (reader, writer bool) {
	return codecDirections(v, "json")
}

var (
	_ Fielded  = (*Variant)(nil)
	_ Optioned = (*Variant)(nil)
)
