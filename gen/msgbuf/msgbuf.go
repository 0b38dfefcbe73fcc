// Package msgbuf generates Go types and binary message-buffer codec
// methods from a linked, folded [ast.File]. Every field read/write
// becomes an explicit encoding/binary call against the
// [schemarun.MessageBuffer] ABI, and each variant's payload becomes a
// tagged struct with one nullable pointer per case.
package msgbuf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kralicky/schemac/ast"
)

// Generate renders the full Go source file for f: a package clause
// (from the `opt package` file option, defaulting to "generated"),
// type declarations for every structure and variant, and
// ReadMessageBuffer/WriteMessageBuffer methods for every
// structure/variant that opted into the binary codec. Declarations are
// emitted in descending-MaxRank order (deepest dependency first), even
// though Go's package-level declaration order has no effect on
// compilation.
func Generate(f *ast.File) (string, error) {
	var b strings.Builder

	pkg := "generated"
	if args, ok := f.Option("package"); ok && len(args) > 0 {
		if name := args[0].AsValue().Literal; name != "" {
			pkg = name
		}
	}

	fmt.Fprintf(&b, "// Code generated by schemac. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&b, "import (\n\t\"encoding/binary\"\n\t\"math\"\n\n\t\"github.com/kralicky/schemac/schemarun\"\n)\n\n")

	populateFieldTypes(f)
	writeHelpers(&b)

	for _, dt := range orderedByDescendingRank(f) {
		switch dt.Kind() {
		case ast.KindStructure:
			genStructureType(&b, dt.Identifier().PascalCase(), dt.Structure())
		case ast.KindVariant:
			genVariantType(&b, f, dt.Identifier().PascalCase(), dt.Variant())
		}
	}

	for _, dt := range orderedByDescendingRank(f) {
		switch dt.Kind() {
		case ast.KindStructure:
			genStructureCodec(&b, f, dt.Identifier().PascalCase(), dt.Structure())
		case ast.KindVariant:
			genVariantCodec(&b, f, dt.Identifier().PascalCase(), dt.Variant())
		}
	}

	return b.String(), nil
}

func orderedByDescendingRank(f *ast.File) []*ast.DataType {
	dts := make([]*ast.DataType, 0, len(f.DataTypes()))
	for _, dt := range f.DataTypes() {
		if dt.Kind() == ast.KindStructure || dt.Kind() == ast.KindVariant {
			dts = append(dts, dt)
		}
	}
	sort.SliceStable(dts, func(i, j int) bool {
		return dts[i].MaxRank() > dts[j].MaxRank()
	})
	return dts
}

// goType returns the Go type backing a resolved field reference: the
// scalar type for a primitive, the PascalCase type name for a
// structure/variant, or "" if unresolved (should not happen past
// linking).
func goType(f *ast.File, ref *ast.Reference) string {
	id, ok := ref.GetID()
	if !ok {
		return ""
	}
	dt, ok := f.DataType(id)
	if !ok {
		return ""
	}
	switch dt.Kind() {
	case ast.KindBoolean:
		return "bool"
	case ast.KindInt8:
		return "int8"
	case ast.KindInt16:
		return "int16"
	case ast.KindInt32:
		return "int32"
	case ast.KindInt64:
		return "int64"
	case ast.KindUInt8:
		return "uint8"
	case ast.KindUInt16:
		return "uint16"
	case ast.KindUInt32:
		return "uint32"
	case ast.KindUInt64:
		return "uint64"
	case ast.KindSingle:
		return "float32"
	case ast.KindDouble:
		return "float64"
	case ast.KindString:
		return "string"
	case ast.KindStructure, ast.KindVariant:
		return dt.Identifier().PascalCase()
	default:
		return ""
	}
}

func genStructureType(b *strings.Builder, name string, s *ast.Structure) {
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, field := range s.Fields() {
		fmt.Fprintf(b, "\t%s %s\n", field.Identifier().PascalCase(), fieldGoType(field))
	}
	fmt.Fprintf(b, "}\n\n")

	for _, field := range s.Fields() {
		genAccessors(b, name, field)
	}
}

func fieldGoType(field *ast.Field) string {
	if t := fieldCachedType[field]; t != "" {
		return t
	}
	return "any"
}

// fieldCachedType is populated by populateFieldTypes before any type
// emission so fieldGoType can look up a field's Go type without
// re-walking the file for every reference.
var fieldCachedType = map[*ast.Field]string{}

// populateFieldTypes resets and fills fieldCachedType for every field of
// every structure/variant in f. Generate calls this once up front since
// type declarations and codec bodies both need it and are emitted in
// separate passes.
func populateFieldTypes(f *ast.File) {
	fieldCachedType = map[*ast.Field]string{}
	for _, dt := range f.DataTypes() {
		fielded := dt.Fielded()
		if fielded == nil {
			continue
		}
		for i := 0; i < len(fielded.Fields()); i++ {
			field, _ := fielded.Field(i)
			fieldCachedType[field] = goType(f, field.Reference())
		}
	}
}

// writeHelpers emits the unexported little-endian read/write helpers
// generated codec methods call against the [schemarun.MessageBuffer]
// ABI, growing the buffer via SetSize as each field's bytes are copied
// in or out.
func writeHelpers(b *strings.Builder) {
	b.WriteString(`func readBool(mb schemarun.MessageBuffer) bool {
	return readUint8(mb) != 0
}

func writeBool(mb schemarun.MessageBuffer, v bool) {
	if v {
		writeUint8(mb, 1)
	} else {
		writeUint8(mb, 0)
	}
}

func readUint8(mb schemarun.MessageBuffer) uint8 {
	n := mb.Size()
	mb.SetSize(n + 1)
	return mb.Buffer()[n]
}

func writeUint8(mb schemarun.MessageBuffer, v uint8) {
	n := mb.Size()
	mb.SetSize(n + 1)
	mb.Buffer()[n] = v
}

func readUint16(mb schemarun.MessageBuffer) uint16 {
	n := mb.Size()
	mb.SetSize(n + 2)
	return binary.LittleEndian.Uint16(mb.Buffer()[n:])
}

func writeUint16(mb schemarun.MessageBuffer, v uint16) {
	n := mb.Size()
	mb.SetSize(n + 2)
	binary.LittleEndian.PutUint16(mb.Buffer()[n:], v)
}

func readUint32(mb schemarun.MessageBuffer) uint32 {
	n := mb.Size()
	mb.SetSize(n + 4)
	return binary.LittleEndian.Uint32(mb.Buffer()[n:])
}

func writeUint32(mb schemarun.MessageBuffer, v uint32) {
	n := mb.Size()
	mb.SetSize(n + 4)
	binary.LittleEndian.PutUint32(mb.Buffer()[n:], v)
}

func readUint64(mb schemarun.MessageBuffer) uint64 {
	n := mb.Size()
	mb.SetSize(n + 8)
	return binary.LittleEndian.Uint64(mb.Buffer()[n:])
}

func writeUint64(mb schemarun.MessageBuffer, v uint64) {
	n := mb.Size()
	mb.SetSize(n + 8)
	binary.LittleEndian.PutUint64(mb.Buffer()[n:], v)
}

func readFloat32(mb schemarun.MessageBuffer) float32 {
	return math.Float32frombits(readUint32(mb))
}

func writeFloat32(mb schemarun.MessageBuffer, v float32) {
	writeUint32(mb, math.Float32bits(v))
}

func readFloat64(mb schemarun.MessageBuffer) float64 {
	return math.Float64frombits(readUint64(mb))
}

func writeFloat64(mb schemarun.MessageBuffer, v float64) {
	writeUint64(mb, math.Float64bits(v))
}

func readString(mb schemarun.MessageBuffer) string {
	size := readUint16(mb)
	n := mb.Size()
	mb.SetSize(n + int(size))
	return string(mb.Buffer()[n : n+int(size)])
}

func writeString(mb schemarun.MessageBuffer, v string) {
	writeUint16(mb, uint16(len(v)))
	n := mb.Size()
	mb.SetSize(n + len(v))
	copy(mb.Buffer()[n:], v)
}

`)
}

func genAccessors(b *strings.Builder, owner string, field *ast.Field) {
	name := field.Identifier().PascalCase()
	lower := field.Identifier().CamelCase()
	goTyp := fieldGoType(field)

	fmt.Fprintf(b, "func (v *%s) Get%s() %s { return v.%s }\n", owner, name, goTyp, name)
	fmt.Fprintf(b, "func (v *%s) Set%s(%s %s) { v.%s = %s }\n\n", owner, name, lower, goTyp, name, lower)
}

// genVariantType emits a tagged struct: an exported Kind field whose
// type is a per-variant closed enum, plus one nullable pointer field per
// case. At most one pointer is non-nil, the one Kind selects;
// ReadMessageBuffer clears every case pointer before allocating the case
// it reads.
func genVariantType(b *strings.Builder, f *ast.File, name string, v *ast.Variant) {
	fmt.Fprintf(b, "type %sKind int\n\nconst (\n", name)
	for i, field := range v.Fields() {
		if i == 0 {
			fmt.Fprintf(b, "\t%s%s %sKind = iota + 1\n", name, field.Identifier().PascalCase(), name)
		} else {
			fmt.Fprintf(b, "\t%s%s\n", name, field.Identifier().PascalCase())
		}
	}
	fmt.Fprintf(b, ")\n\n")

	fmt.Fprintf(b, "type %s struct {\n\tKind %sKind\n", name, name)
	for _, field := range v.Fields() {
		fmt.Fprintf(b, "\t%s *%s\n", field.Identifier().PascalCase(), fieldGoType(field))
	}
	fmt.Fprintf(b, "}\n\n")
}

func genStructureCodec(b *strings.Builder, f *ast.File, name string, s *ast.Structure) {
	reader, writer := s.MessageBufferCodec()
	if reader {
		fmt.Fprintf(b, "func (v *%s) ReadMessageBuffer(mb schemarun.MessageBuffer) bool {\n", name)
		for _, field := range s.Fields() {
			writeFieldRead(b, f, "v."+field.Identifier().PascalCase(), field)
		}
		fmt.Fprintf(b, "\treturn true\n}\n\n")
	}
	if writer {
		fmt.Fprintf(b, "func (v *%s) WriteMessageBuffer(mb schemarun.MessageBuffer) {\n", name)
		for _, field := range s.Fields() {
			writeFieldWrite(b, f, "v."+field.Identifier().PascalCase(), field)
		}
		fmt.Fprintf(b, "}\n\n")
	}
}

func genVariantCodec(b *strings.Builder, f *ast.File, name string, v *ast.Variant) {
	reader, writer := v.MessageBufferCodec()
	if reader {
		fmt.Fprintf(b, "func (v *%s) ReadMessageBuffer(mb schemarun.MessageBuffer) bool {\n", name)
		fmt.Fprintf(b, "\tvar _kind uint16\n")
		fmt.Fprintf(b, "\t_kind = readUint16(mb)\n")
		fmt.Fprintf(b, "\tv.Kind = %sKind(_kind)\n", name)
		for _, field := range v.Fields() {
			fmt.Fprintf(b, "\tv.%s = nil\n", field.Identifier().PascalCase())
		}
		fmt.Fprintf(b, "\tswitch v.Kind {\n")
		for _, field := range v.Fields() {
			caseName := name + field.Identifier().PascalCase()
			goTyp := fieldCachedType[field]
			fmt.Fprintf(b, "\tcase %s:\n", caseName)
			fmt.Fprintf(b, "\t\tv.%s = new(%s)\n", field.Identifier().PascalCase(), goTyp)
			writeFieldRead(b, f, "(*v."+field.Identifier().PascalCase()+")", field)
		}
		fmt.Fprintf(b, "\tdefault:\n\t\treturn false\n\t}\n")
		fmt.Fprintf(b, "\treturn true\n}\n\n")
	}
	if writer {
		fmt.Fprintf(b, "func (v *%s) WriteMessageBuffer(mb schemarun.MessageBuffer) {\n", name)
		fmt.Fprintf(b, "\twriteUint16(mb, uint16(v.Kind))\n")
		fmt.Fprintf(b, "\tswitch v.Kind {\n")
		for _, field := range v.Fields() {
			caseName := name + field.Identifier().PascalCase()
			fmt.Fprintf(b, "\tcase %s:\n", caseName)
			writeFieldWrite(b, f, "(*v."+field.Identifier().PascalCase()+")", field)
		}
		fmt.Fprintf(b, "\t}\n")
		fmt.Fprintf(b, "}\n\n")
	}
}

// writeFieldRead emits the statements that read one field's value from
// mb into reference, dispatching on the field's resolved data-type kind.
func writeFieldRead(b *strings.Builder, f *ast.File, reference string, field *ast.Field) {
	id, ok := field.Reference().GetID()
	if !ok {
		return
	}
	dt, ok := f.DataType(id)
	if !ok {
		return
	}
	switch dt.Kind() {
	case ast.KindBoolean:
		fmt.Fprintf(b, "\t%s = readBool(mb)\n", reference)
	case ast.KindInt8:
		fmt.Fprintf(b, "\t%s = int8(readUint8(mb))\n", reference)
	case ast.KindInt16:
		fmt.Fprintf(b, "\t%s = int16(readUint16(mb))\n", reference)
	case ast.KindInt32:
		fmt.Fprintf(b, "\t%s = int32(readUint32(mb))\n", reference)
	case ast.KindInt64:
		fmt.Fprintf(b, "\t%s = int64(readUint64(mb))\n", reference)
	case ast.KindUInt8:
		fmt.Fprintf(b, "\t%s = readUint8(mb)\n", reference)
	case ast.KindUInt16:
		fmt.Fprintf(b, "\t%s = readUint16(mb)\n", reference)
	case ast.KindUInt32:
		fmt.Fprintf(b, "\t%s = readUint32(mb)\n", reference)
	case ast.KindUInt64:
		fmt.Fprintf(b, "\t%s = readUint64(mb)\n", reference)
	case ast.KindSingle:
		fmt.Fprintf(b, "\t%s = readFloat32(mb)\n", reference)
	case ast.KindDouble:
		fmt.Fprintf(b, "\t%s = readFloat64(mb)\n", reference)
	case ast.KindString:
		fmt.Fprintf(b, "\t%s = readString(mb)\n", reference)
	case ast.KindStructure:
		fmt.Fprintf(b, "\tif !%s.ReadMessageBuffer(mb) {\n\t\treturn false\n\t}\n", reference)
	case ast.KindVariant:
		fmt.Fprintf(b, "\tif !%s.ReadMessageBuffer(mb) {\n\t\treturn false\n\t}\n", reference)
	}
}

func writeFieldWrite(b *strings.Builder, f *ast.File, reference string, field *ast.Field) {
	id, ok := field.Reference().GetID()
	if !ok {
		return
	}
	dt, ok := f.DataType(id)
	if !ok {
		return
	}
	switch dt.Kind() {
	case ast.KindBoolean:
		fmt.Fprintf(b, "\twriteBool(mb, %s)\n", reference)
	case ast.KindInt8:
		fmt.Fprintf(b, "\twriteUint8(mb, uint8(%s))\n", reference)
	case ast.KindInt16:
		fmt.Fprintf(b, "\twriteUint16(mb, uint16(%s))\n", reference)
	case ast.KindInt32:
		fmt.Fprintf(b, "\twriteUint32(mb, uint32(%s))\n", reference)
	case ast.KindInt64:
		fmt.Fprintf(b, "\twriteUint64(mb, uint64(%s))\n", reference)
	case ast.KindUInt8:
		fmt.Fprintf(b, "\twriteUint8(mb, %s)\n", reference)
	case ast.KindUInt16:
		fmt.Fprintf(b, "\twriteUint16(mb, %s)\n", reference)
	case ast.KindUInt32:
		fmt.Fprintf(b, "\twriteUint32(mb, %s)\n", reference)
	case ast.KindUInt64:
		fmt.Fprintf(b, "\twriteUint64(mb, %s)\n", reference)
	case ast.KindSingle:
		fmt.Fprintf(b, "\twriteFloat32(mb, %s)\n", reference)
	case ast.KindDouble:
		fmt.Fprintf(b, "\twriteFloat64(mb, %s)\n", reference)
	case ast.KindString:
		fmt.Fprintf(b, "\twriteString(mb, %s)\n", reference)
	case ast.KindStructure:
		fmt.Fprintf(b, "\t%s.WriteMessageBuffer(mb)\n", reference)
	case ast.KindVariant:
		fmt.Fprintf(b, "\t%s.WriteMessageBuffer(mb)\n", reference)
	}
}
