// Package jsoncodec generates Go ReadJSON/WriteJSON methods from a
// linked, folded [ast.File]. Every structure's fields and every
// variant's "_kind" discriminant plus selected case become member
// lookups/appends against the [schemarun.JSONValue]/
// [schemarun.JSONObjectBuilder] ABI.
package jsoncodec

import (
	"fmt"
	"strings"

	"github.com/kralicky/schemac/ast"
)

// Generate renders ReadJSON/WriteJSON methods for every structure and
// variant in f that opted into the JSON codec, as a standalone Go
// source file with its own package clause and imports. It assumes the
// file's plain Go types (struct fields, variant Kind enums) are already
// declared elsewhere, by [github.com/kralicky/schemac/gen/msgbuf]; neither
// Generate nor GenerateBody emits type declarations, only methods.
func Generate(f *ast.File) (string, error) {
	var b strings.Builder

	pkg := "generated"
	if args, ok := f.Option("package"); ok && len(args) > 0 {
		if name := args[0].AsValue().Literal; name != "" {
			pkg = name
		}
	}

	fmt.Fprintf(&b, "// Code generated by schemac. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&b, "import (\n\t\"github.com/kralicky/schemac/schemarun\"\n)\n\n")
	b.WriteString(GenerateBody(f))

	return b.String(), nil
}

// GenerateBody renders the same ReadJSON/WriteJSON methods as Generate
// but without a package clause or import block, so a driver assembling
// one output file from multiple generators can fold this package's
// methods in alongside another generator's types and imports.
func GenerateBody(f *ast.File) string {
	var b strings.Builder
	for _, dt := range f.DataTypes() {
		switch dt.Kind() {
		case ast.KindStructure:
			genStructureCodec(&b, f, dt.Identifier().PascalCase(), dt.Structure())
		case ast.KindVariant:
			genVariantCodec(&b, f, dt.Identifier().PascalCase(), dt.Variant())
		}
	}
	return b.String()
}

func genStructureCodec(b *strings.Builder, f *ast.File, name string, s *ast.Structure) {
	reader, writer := s.JSONCodec()
	if reader {
		fmt.Fprintf(b, "func (v *%s) ReadJSON(_val schemarun.JSONValue) bool {\n", name)
		for _, field := range s.Fields() {
			writeMemberRead(b, f, "_val", "v."+field.Identifier().PascalCase(), field)
		}
		fmt.Fprintf(b, "\treturn true\n}\n\n")
	}
	if writer {
		fmt.Fprintf(b, "func (v *%s) WriteJSON(_b schemarun.JSONObjectBuilder) {\n", name)
		for _, field := range s.Fields() {
			writeMemberWrite(b, f, "_b", "v."+field.Identifier().PascalCase(), field)
		}
		fmt.Fprintf(b, "}\n\n")
	}
}

// genVariantCodec emits a "_kind" discriminant member alongside the
// selected case's own member, both read from and written to the same
// object as the variant's enclosing value — there is no nested object
// for the case payload.
func genVariantCodec(b *strings.Builder, f *ast.File, name string, v *ast.Variant) {
	reader, writer := v.JSONCodec()
	if reader {
		fmt.Fprintf(b, "func (v *%s) ReadJSON(_val schemarun.JSONValue) bool {\n", name)
		fmt.Fprintf(b, "\t_kindMember, ok := _val.Member(\"_kind\")\n")
		fmt.Fprintf(b, "\tif !ok || !_kindMember.IsInt64() {\n\t\treturn false\n\t}\n")
		fmt.Fprintf(b, "\tv.Kind = %sKind(_kindMember.Int64())\n", name)
		fmt.Fprintf(b, "\tswitch v.Kind {\n")
		for _, field := range v.Fields() {
			caseName := name + field.Identifier().PascalCase()
			goTyp := fieldGoType(f, field)
			fmt.Fprintf(b, "\tcase %s:\n", caseName)
			fmt.Fprintf(b, "\t\tv.%s = new(%s)\n", field.Identifier().PascalCase(), goTyp)
			writeMemberRead(b, f, "_val", "(*v."+field.Identifier().PascalCase()+")", field)
		}
		fmt.Fprintf(b, "\tdefault:\n\t\treturn false\n\t}\n")
		fmt.Fprintf(b, "\treturn true\n}\n\n")
	}
	if writer {
		fmt.Fprintf(b, "func (v *%s) WriteJSON(_b schemarun.JSONObjectBuilder) {\n", name)
		fmt.Fprintf(b, "\t_b.AddInt64(\"_kind\", int64(v.Kind))\n")
		fmt.Fprintf(b, "\tswitch v.Kind {\n")
		for _, field := range v.Fields() {
			caseName := name + field.Identifier().PascalCase()
			fmt.Fprintf(b, "\tcase %s:\n", caseName)
			writeMemberWrite(b, f, "_b", "(*v."+field.Identifier().PascalCase()+")", field)
		}
		fmt.Fprintf(b, "\t}\n")
		fmt.Fprintf(b, "}\n\n")
	}
}

func fieldGoType(f *ast.File, field *ast.Field) string {
	id, ok := field.Reference().GetID()
	if !ok {
		return "any"
	}
	dt, ok := f.DataType(id)
	if !ok {
		return "any"
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
		return "any"
	}
}

// writeMemberRead emits the statements that look up field's member on
// valueVar by name and assign it into reference, dispatching on the
// field's resolved data-type kind.
func writeMemberRead(b *strings.Builder, f *ast.File, valueVar, reference string, field *ast.Field) {
	id, ok := field.Reference().GetID()
	if !ok {
		return
	}
	dt, ok := f.DataType(id)
	if !ok {
		return
	}
	name := field.Identifier().String()

	fmt.Fprintf(b, "\t{\n")
	fmt.Fprintf(b, "\t\t_m, ok := %s.Member(%q)\n", valueVar, name)
	fmt.Fprintf(b, "\t\tif !ok {\n\t\t\treturn false\n\t\t}\n")

	switch dt.Kind() {
	case ast.KindBoolean:
		fmt.Fprintf(b, "\t\tif !_m.IsBool() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = _m.Bool()\n", reference)
	case ast.KindInt8:
		fmt.Fprintf(b, "\t\tif !_m.IsInt64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = int8(_m.Int64())\n", reference)
	case ast.KindInt16:
		fmt.Fprintf(b, "\t\tif !_m.IsInt64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = int16(_m.Int64())\n", reference)
	case ast.KindInt32:
		fmt.Fprintf(b, "\t\tif !_m.IsInt64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = int32(_m.Int64())\n", reference)
	case ast.KindInt64:
		fmt.Fprintf(b, "\t\tif !_m.IsInt64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = _m.Int64()\n", reference)
	case ast.KindUInt8:
		fmt.Fprintf(b, "\t\tif !_m.IsUint64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = uint8(_m.Uint64())\n", reference)
	case ast.KindUInt16:
		fmt.Fprintf(b, "\t\tif !_m.IsUint64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = uint16(_m.Uint64())\n", reference)
	case ast.KindUInt32:
		fmt.Fprintf(b, "\t\tif !_m.IsUint64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = uint32(_m.Uint64())\n", reference)
	case ast.KindUInt64:
		fmt.Fprintf(b, "\t\tif !_m.IsUint64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = _m.Uint64()\n", reference)
	case ast.KindSingle:
		fmt.Fprintf(b, "\t\tif !_m.IsFloat64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = float32(_m.Float64())\n", reference)
	case ast.KindDouble:
		fmt.Fprintf(b, "\t\tif !_m.IsFloat64() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = _m.Float64()\n", reference)
	case ast.KindString:
		fmt.Fprintf(b, "\t\tif !_m.IsString() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s = _m.String()\n", reference)
	case ast.KindStructure, ast.KindVariant:
		fmt.Fprintf(b, "\t\tif !_m.IsObject() {\n\t\t\treturn false\n\t\t}\n")
		fmt.Fprintf(b, "\t\tif !%s.ReadJSON(_m) {\n\t\t\treturn false\n\t\t}\n", reference)
	}

	fmt.Fprintf(b, "\t}\n")
}

// writeMemberWrite emits the statement(s) that add field's value as a
// member of builderVar, dispatching on the field's resolved data-type
// kind.
func writeMemberWrite(b *strings.Builder, f *ast.File, builderVar, reference string, field *ast.Field) {
	id, ok := field.Reference().GetID()
	if !ok {
		return
	}
	dt, ok := f.DataType(id)
	if !ok {
		return
	}
	name := field.Identifier().String()

	switch dt.Kind() {
	case ast.KindBoolean:
		fmt.Fprintf(b, "\t%s.AddBool(%q, %s)\n", builderVar, name, reference)
	case ast.KindInt8, ast.KindInt16, ast.KindInt32, ast.KindInt64:
		fmt.Fprintf(b, "\t%s.AddInt64(%q, int64(%s))\n", builderVar, name, reference)
	case ast.KindUInt8, ast.KindUInt16, ast.KindUInt32, ast.KindUInt64:
		fmt.Fprintf(b, "\t%s.AddUint64(%q, uint64(%s))\n", builderVar, name, reference)
	case ast.KindSingle, ast.KindDouble:
		fmt.Fprintf(b, "\t%s.AddFloat64(%q, float64(%s))\n", builderVar, name, reference)
	case ast.KindString:
		fmt.Fprintf(b, "\t%s.AddString(%q, %s)\n", builderVar, name, reference)
	case ast.KindStructure, ast.KindVariant:
		fmt.Fprintf(b, "\t{\n")
		fmt.Fprintf(b, "\t\t_nested := %s.AddObject(%q)\n", builderVar, name)
		fmt.Fprintf(b, "\t\t%s.WriteJSON(_nested)\n", reference)
		fmt.Fprintf(b, "\t}\n")
	}
}
