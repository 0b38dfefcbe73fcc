package ast

// File is the schema compilation unit: a name, an ordered list of data
// types, and a file-level option map (e.g. `opt package = "..."`). It is
// pre-populated with the primitive types and the two built-in aliases
// (`size` -> `int64`, `usize` -> `uint64`) before the parser adds any
// user declarations, so lookups by name work uniformly for built-ins and
// user types alike.
type File struct {
	name      string
	dataTypes []*DataType
	optioned
}

// NewFile returns a File seeded with every primitive kind and the
// built-in size/usize aliases, ready for the parser to append user
// declarations to.
func NewFile(name string) *File {
	f := &File{name: name, optioned: newOptioned()}

	for _, kind := range []Kind{
		KindBoolean, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUInt8, KindUInt16, KindUInt32, KindUInt64,
		KindSingle, KindDouble, KindString,
	} {
		f.dataTypes = append(f.dataTypes, newPrimitive(kind))
	}

	f.AddAlias(AliasFrom("size", "int64"))
	f.AddAlias(AliasFrom("usize", "uint64"))

	return f
}

func (f *File) Name() string { return f.name }

func (f *File) DataTypes() []*DataType { return f.dataTypes }

func (f *File) DataType(id int) (*DataType, bool) {
	if id < 0 || id >= len(f.dataTypes) {
		return nil, false
	}
	return f.dataTypes[id], true
}

func (f *File) AddDataType(dt *DataType) int {
	f.dataTypes = append(f.dataTypes, dt)
	return len(f.dataTypes) - 1
}

func (f *File) AddAlias(a *Alias) int     { return f.AddDataType(NewDataTypeFromAlias(a)) }
func (f *File) AddStructure(s *Structure) int { return f.AddDataType(NewDataTypeFromStructure(s)) }
func (f *File) AddVariant(v *Variant) int     { return f.AddDataType(NewDataTypeFromVariant(v)) }

var _ Optioned = (*File)(nil)
