package ast

// Kind is the closed set of data-type variants the schema language
// supports: the eleven scalar primitives, String, and the three
// compound kinds (Alias, Structure, Variant). New variants require
// touching every switch in this module on purpose — that's the point of
// keeping it closed.
type Kind int

const (
	KindBoolean Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindSingle
	KindDouble
	KindString
	KindAlias
	KindStructure
	KindVariant
)

// primitiveSizes gives the static byte size of every scalar kind.
// String's header size (the u16 length prefix) is included here; its
// bytes are not counted in any static size.
var primitiveSizes = map[Kind]int{
	KindBoolean: 1,
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindInt64:   8,
	KindUInt8:   1,
	KindUInt16:  2,
	KindUInt32:  4,
	KindUInt64:  8,
	KindSingle:  4,
	KindDouble:  8,
	KindString:  2,
}

// builtinIdentifier gives the spelling primitive kinds are seeded into
// every File under.
var builtinIdentifier = map[Kind]string{
	KindBoolean: "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUInt8:   "uint8",
	KindUInt16:  "uint16",
	KindUInt32:  "uint32",
	KindUInt64:  "uint64",
	KindSingle:  "single",
	KindDouble:  "double",
	KindString:  "string",
}

// DataType is an identified, tagged entity with one payload from the
// closed Kind set, plus the two derived attributes every kind carries:
// Size (the static byte footprint of its wire header) and MaxRank (its
// position in the dependency-ordered declaration sequence).
type DataType struct {
	identifier Identifier
	kind       Kind
	maxRank    int

	alias     *Alias
	structure *Structure
	variant   *Variant
}

func newPrimitive(kind Kind) *DataType {
	return &DataType{identifier: IdentifierFrom(builtinIdentifier[kind]), kind: kind}
}

func NewDataTypeFromAlias(a *Alias) *DataType {
	return &DataType{identifier: a.Identifier(), kind: KindAlias, alias: a}
}

func NewDataTypeFromStructure(s *Structure) *DataType {
	return &DataType{identifier: s.Identifier(), kind: KindStructure, structure: s}
}

func NewDataTypeFromVariant(v *Variant) *DataType {
	return &DataType{identifier: v.Identifier(), kind: KindVariant, variant: v}
}

func (d *DataType) Identifier() Identifier { return d.identifier }

func (d *DataType) SetIdentifier(id Identifier) {
	d.identifier = id
	switch d.kind {
	case KindAlias:
		d.alias.SetIdentifier(id)
	case KindStructure:
		d.structure.SetIdentifier(id)
	case KindVariant:
		d.variant.SetIdentifier(id)
	}
}

func (d *DataType) Kind() Kind { return d.kind }

func (d *DataType) Alias() *Alias         { return d.alias }
func (d *DataType) Structure() *Structure { return d.structure }
func (d *DataType) Variant() *Variant     { return d.variant }

// IsAlias reports whether this data type is a rename rather than a
// terminal type. Dependency-graph construction uses this to tell which
// nodes alias collapse must walk through.
func (d *DataType) IsAlias() bool { return d.kind == KindAlias }

// Size is the static byte footprint of the type's wire header: the
// primitive table value for scalars, 0 for an alias (a rename
// contributes nothing), the accumulated MinSize for a structure, and
// MinSize (max field size + discriminant) for a variant.
func (d *DataType) Size() int {
	if size, ok := primitiveSizes[d.kind]; ok {
		return size
	}
	switch d.kind {
	case KindAlias:
		return 0
	case KindStructure:
		return d.structure.MinSize()
	case KindVariant:
		return d.variant.MinSize()
	default:
		panic("schemac: unhandled data type kind")
	}
}

func (d *DataType) MaxRank() int { return d.maxRank }

// UpdateMaxRank raises MaxRank to rank if rank is larger. Semantic
// analysis's DFS unwind calls this once for every popped node with the
// stack depth it is popped at, so a type's MaxRank is the depth at which
// the DFS first reached it; a later path that reaches an already
// finished type at a greater depth does not raise it.
func (d *DataType) UpdateMaxRank(rank int) {
	if rank > d.maxRank {
		d.maxRank = rank
	}
}

// Fielded returns the Fielded view of a structure or variant data type,
// or nil for anything else.
func (d *DataType) Fielded() Fielded {
	switch d.kind {
	case KindStructure:
		return d.structure
	case KindVariant:
		return d.variant
	default:
		return nil
	}
}

// Optioned returns the Optioned view of a structure or variant data
// type, or nil for anything else.
func (d *DataType) Optioned() Optioned {
	switch d.kind {
	case KindStructure:
		return d.structure
	case KindVariant:
		return d.variant
	default:
		return nil
	}
}
