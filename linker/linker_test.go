package linker

import (
	"testing"

	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/parser"
	"github.com/kralicky/schemac/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkSource(t *testing.T, src string) (*ast.File, *reporter.Handler) {
	t.Helper()
	h := reporter.NewHandler()
	f := parser.ParseFile("test.schema", src, h)
	require.False(t, h.HasErrors(), "parse errors: %v", h.Reports())
	Link(f, h)
	return f, h
}

func structureNamed(t *testing.T, f *ast.File, name string) *ast.Structure {
	t.Helper()
	for _, dt := range f.DataTypes() {
		if dt.Kind() == ast.KindStructure && dt.Identifier().Get() == name {
			return dt.Structure()
		}
	}
	t.Fatalf("no structure named %q", name)
	return nil
}

func TestLinkResolvesFieldReferences(t *testing.T) {
	f, h := linkSource(t, `
		struct Point {
			var x: int32;
			var y: int32;
		}
	`)
	require.False(t, h.HasErrors())

	s := structureNamed(t, f, "Point")
	for _, field := range s.Fields() {
		_, ok := field.Reference().GetID()
		assert.True(t, ok)
	}
}

func TestLinkUndeclaredTypeReportsDiagnostic(t *testing.T) {
	_, h := linkSource(t, `
		struct Point {
			var x: Missing;
		}
	`)
	assert.True(t, h.HasErrors())
}

func TestLinkComputesStructureSize(t *testing.T) {
	f, h := linkSource(t, `
		struct Point {
			var x: int32;
			var y: int32;
		}
	`)
	require.False(t, h.HasErrors())

	s := structureNamed(t, f, "Point")
	assert.Equal(t, 8, s.MinSize())
}

func TestLinkComputesNestedStructureSize(t *testing.T) {
	f, h := linkSource(t, `
		struct Point {
			var x: int32;
			var y: int32;
		}
		struct Line {
			var from: Point;
			var to: Point;
		}
	`)
	require.False(t, h.HasErrors())

	line := structureNamed(t, f, "Line")
	assert.Equal(t, 16, line.MinSize())
}

func TestLinkVariantSizeIsMaxFieldPlusDiscriminant(t *testing.T) {
	f, h := linkSource(t, `
		struct Small {
			var a: int8;
		}
		struct Big {
			var a: int64;
		}
		variant Either {
			var small: Small;
			var big: Big;
		}
	`)
	require.False(t, h.HasErrors())

	var either *ast.Variant
	for _, dt := range f.DataTypes() {
		if dt.Kind() == ast.KindVariant {
			either = dt.Variant()
		}
	}
	require.NotNil(t, either)
	assert.Equal(t, 10, either.MinSize())
}

func TestLinkDetectsDirectCycle(t *testing.T) {
	_, h := linkSource(t, `
		struct A {
			var b: B;
		}
		struct B {
			var a: A;
		}
	`)
	assert.True(t, h.HasErrors())
}

func TestLinkCollapsesAliasChainToTerminalType(t *testing.T) {
	f, h := linkSource(t, `
		struct Point {
			var x: size;
		}
	`)
	require.False(t, h.HasErrors())

	s := structureNamed(t, f, "Point")
	id, ok := s.Fields()[0].Reference().GetID()
	require.True(t, ok)
	dt, ok := f.DataType(id)
	require.True(t, ok)
	assert.Equal(t, "int64", dt.Identifier().Get())
}

func TestLinkRedefinedDataTypeReportsDiagnostic(t *testing.T) {
	_, h := linkSource(t, `
		struct Point {
			var x: int32;
		}
		struct Point {
			var y: int32;
		}
	`)
	assert.True(t, h.HasErrors())
}
