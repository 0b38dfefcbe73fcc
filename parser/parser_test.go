package parser

import (
	"testing"

	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.File, *reporter.Handler) {
	t.Helper()
	h := reporter.NewHandler()
	f := ParseFile("test.schema", src, h)
	return f, h
}

func TestParseEmptyStructure(t *testing.T) {
	f, h := parse(t, `struct Point {}`)
	require.False(t, h.HasErrors())

	dt, ok := f.DataType(len(f.DataTypes()) - 1)
	require.True(t, ok)
	assert.Equal(t, ast.KindStructure, dt.Kind())
	assert.Equal(t, "Point", dt.Identifier().Get())
}

func TestParseStructureWithFields(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			var x: int32;
			var y: int32;
		}
	`)
	require.False(t, h.HasErrors())

	dt, ok := f.DataType(len(f.DataTypes()) - 1)
	require.True(t, ok)
	s := dt.Structure()
	require.NotNil(t, s)
	require.Len(t, s.Fields(), 2)
	assert.Equal(t, "x", s.Fields()[0].Identifier().Get())
	assert.Equal(t, "int32", s.Fields()[0].Reference().Get())
	assert.Equal(t, "y", s.Fields()[1].Identifier().Get())
}

func TestParseVariantWithCases(t *testing.T) {
	f, h := parse(t, `
		variant Shape {
			var circle: Circle;
			var square: Square;
		}
	`)
	require.False(t, h.HasErrors())

	dt, ok := f.DataType(len(f.DataTypes()) - 1)
	require.True(t, ok)
	v := dt.Variant()
	require.NotNil(t, v)
	require.Len(t, v.Fields(), 2)
	assert.Equal(t, 1, v.Tag(0))
	assert.Equal(t, 2, v.Tag(1))
}

func TestParseBareOptionFoldsToNull(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			opt message_buffer;
		}
	`)
	require.False(t, h.HasErrors())

	dt, _ := f.DataType(len(f.DataTypes()) - 1)
	s := dt.Structure()
	reader, writer := s.MessageBufferCodec()
	assert.True(t, reader)
	assert.True(t, writer)
}

func TestParseTwoArgumentOptionSetsIndependently(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			opt message_buffer(true, false);
		}
	`)
	require.False(t, h.HasErrors())

	dt, _ := f.DataType(len(f.DataTypes()) - 1)
	s := dt.Structure()
	reader, writer := s.MessageBufferCodec()
	assert.True(t, reader)
	assert.False(t, writer)
}

func TestParseFileOption(t *testing.T) {
	f, h := parse(t, `opt package = "mypkg";`)
	require.False(t, h.HasErrors())

	args, ok := f.Option("package")
	require.True(t, ok)
	require.Len(t, args, 1)
	assert.Equal(t, "mypkg", args[0].AsValue().Literal)
}

func TestParseExpressionPrecedence(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			opt scale = 1 + 2 * 3;
		}
	`)
	require.False(t, h.HasErrors())

	dt, _ := f.DataType(len(f.DataTypes()) - 1)
	args, ok := dt.Structure().Option("scale")
	require.True(t, ok)
	expr := args[0]
	require.Equal(t, ast.ExprBinary, expr.Kind)
	assert.Equal(t, ast.Addition, expr.BinOp)
	assert.Equal(t, ast.ExprBinary, expr.Right.Kind)
	assert.Equal(t, ast.Multiplication, expr.Right.BinOp)
}

func TestParseUnaryAndLogical(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			opt cond = !true && -1 < 0;
		}
	`)
	require.False(t, h.HasErrors())

	dt, _ := f.DataType(len(f.DataTypes()) - 1)
	args, ok := dt.Structure().Option("cond")
	require.True(t, ok)
	expr := args[0]
	require.Equal(t, ast.ExprBinary, expr.Kind)
	assert.Equal(t, ast.LogicalAnd, expr.BinOp)
}

func TestParseStringConcatenation(t *testing.T) {
	f, h := parse(t, `opt package = "foo" "bar";`)
	require.False(t, h.HasErrors())

	args, ok := f.Option("package")
	require.True(t, ok)
	assert.Equal(t, "foobar", args[0].AsValue().Literal)
}

func TestParseInvalidDataTypeIdentifierCaseReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `struct point {}`)
	assert.True(t, h.HasErrors())
}

func TestParseInvalidFieldIdentifierCaseReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `
		struct Point {
			var X: int32;
		}
	`)
	assert.True(t, h.HasErrors())
}

func TestParseDataTypeIdentifierWithUnderscoreReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `struct Foo_Bar {}`)
	assert.True(t, h.HasErrors())
}

func TestParseDataTypeIdentifierWithDigitRunIsAccepted(t *testing.T) {
	_, h := parse(t, `struct Point3D {}`)
	assert.False(t, h.HasErrors())
}

func TestParseFieldIdentifierWithDoubledUnderscoreReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `
		struct Point {
			var a__b: int32;
		}
	`)
	assert.True(t, h.HasErrors())
}

func TestParseFieldIdentifierWithTrailingUnderscoreReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `
		struct Point {
			var ab_: int32;
		}
	`)
	assert.True(t, h.HasErrors())
}

func TestParseFieldIdentifierWithDigitsAfterSeparatorIsAccepted(t *testing.T) {
	_, h := parse(t, `
		struct Point {
			var a_1b2: int32;
		}
	`)
	assert.False(t, h.HasErrors())
}

func TestParseMissingSemicolonReportsDiagnosticAndRecovers(t *testing.T) {
	f, h := parse(t, `
		struct Point {
			var x: int32
			var y: int32;
		}
	`)
	assert.True(t, h.HasErrors())
	_ = f
}

func TestParseUnexpectedTopLevelTokenReportsDiagnostic(t *testing.T) {
	_, h := parse(t, `123`)
	assert.True(t, h.HasErrors())
}
