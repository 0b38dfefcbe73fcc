package ast

// Structure is a record type: an identifier, an ordered list of fields,
// and a per-type option map. Its MinSize accumulates additively as
// semantic analysis resolves each field's dependency size.
type Structure struct {
	identifier Identifier
	fields     []*Field
	optioned
	minSize int
}

func NewStructure() *Structure {
	return &Structure{identifier: NewIdentifier(), optioned: newOptioned()}
}

func (s *Structure) Identifier() Identifier      { return s.identifier }
func (s *Structure) SetIdentifier(id Identifier) { s.identifier = id }

func (s *Structure) Fields() []*Field { return s.fields }

func (s *Structure) AddField(f *Field) { s.fields = append(s.fields, f) }

func (s *Structure) Field(i int) (*Field, bool) {
	if i < 0 || i >= len(s.fields) {
		return nil, false
	}
	return s.fields[i], true
}

func (s *Structure) MinSize() int { return s.minSize }

func (s *Structure) UpdateMinSize(size int) { s.minSize += size }

// MessageBufferCodec reports whether reading and/or writing against the
// binary message buffer is enabled, folding the one-argument
// "enable both" shorthand from `opt message_buffer;` / `opt
// message_buffer = true;`.
func (s *Structure) MessageBufferCodec() (reader, writer bool) {
	return codecDirections(s, "message_buffer")
}

// JSONCodec reports whether reading and/or writing against the JSON
// codec is enabled, with the same one-argument shorthand.
func (s *Structure) JSONCodec() (reader, writer bool) {
	return codecDirections(s, "json")
}

// codecDirections folds the canonical two-boolean option representation:
// the one-argument form (including a bare `opt name;`, which the parser
// records as a single Null argument) sets both directions, and a
// two-argument form sets them independently. Any other argument count
// enables neither direction.
func codecDirections(o Optioned, name string) (reader, writer bool) {
	args, ok := o.Option(name)
	if !ok {
		return false, false
	}
	switch len(args) {
	case 1:
		enabled := args[0].AsValue().IsTrue()
		return enabled, enabled
	case 2:
		return args[0].AsValue().IsTrue(), args[1].AsValue().IsTrue()
	default:
		return false, false
	}
}

var (
	_ Fielded  = (*Structure)(nil)
	_ Optioned = (*Structure)(nil)
)
