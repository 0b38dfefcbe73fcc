package msgbuf

import (
	"testing"

	"github.com/kralicky/schemac/linker"
	"github.com/kralicky/schemac/options"
	"github.com/kralicky/schemac/parser"
	"github.com/kralicky/schemac/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	h := reporter.NewHandler()
	f := parser.ParseFile("test.schema", src, h)
	require.False(t, h.HasErrors(), "parse: %v", h.Reports())
	linker.Link(f, h)
	require.False(t, h.HasErrors(), "link: %v", h.Reports())
	options.Fold(f, h)
	require.False(t, h.HasErrors(), "fold: %v", h.Reports())

	out, err := Generate(f)
	require.NoError(t, err)
	return out
}

func TestGeneratePackageClauseFromOption(t *testing.T) {
	out := compile(t, `
		opt package = "mypkg";
		struct Point {
			opt message_buffer;
			var x: int32;
		}
	`)
	assert.Contains(t, out, "package mypkg")
}

func TestGeneratePackageClauseDefault(t *testing.T) {
	out := compile(t, `
		struct Point {
			opt message_buffer;
			var x: int32;
		}
	`)
	assert.Contains(t, out, "package generated")
}

func TestGenerateStructureFields(t *testing.T) {
	out := compile(t, `
		struct Point {
			opt message_buffer;
			var x: int32;
			var y: int32;
		}
	`)
	assert.Contains(t, out, "type Point struct {")
	assert.Contains(t, out, "X int32")
	assert.Contains(t, out, "Y int32")
	assert.Contains(t, out, "func (v *Point) ReadMessageBuffer(mb schemarun.MessageBuffer) bool {")
	assert.Contains(t, out, "func (v *Point) WriteMessageBuffer(mb schemarun.MessageBuffer) {")
}

func TestGenerateSkipsCodecWhenOptionDisabled(t *testing.T) {
	out := compile(t, `
		struct Point {
			var x: int32;
		}
	`)
	assert.NotContains(t, out, "ReadMessageBuffer")
	assert.NotContains(t, out, "WriteMessageBuffer")
}

func TestGenerateOneDirectionOnly(t *testing.T) {
	out := compile(t, `
		struct Point {
			opt message_buffer(true, false);
			var x: int32;
		}
	`)
	assert.Contains(t, out, "ReadMessageBuffer")
	assert.NotContains(t, out, "WriteMessageBuffer")
}

func TestGenerateVariantKindAndCases(t *testing.T) {
	out := compile(t, `
		struct Small {
			var a: int8;
		}
		struct Big {
			var a: int64;
		}
		variant Either {
			opt message_buffer;
			var small: Small;
			var big: Big;
		}
	`)
	assert.Contains(t, out, "type EitherKind int")
	assert.Contains(t, out, "EitherSmall")
	assert.Contains(t, out, "EitherBig")
	assert.Contains(t, out, "Small *Small")
	assert.Contains(t, out, "Big *Big")
	assert.Contains(t, out, "switch v.Kind {")
}

func TestGenerateAccessors(t *testing.T) {
	out := compile(t, `
		struct Point {
			var x: int32;
		}
	`)
	assert.Contains(t, out, "func (v *Point) GetX() int32 { return v.X }")
	assert.Contains(t, out, "func (v *Point) SetX(x int32) { v.X = x }")
}

func TestGenerateNestedStructureField(t *testing.T) {
	out := compile(t, `
		struct Point {
			var x: int32;
		}
		struct Line {
			opt message_buffer;
			var from: Point;
		}
	`)
	assert.Contains(t, out, "From Point")
	assert.Contains(t, out, "v.From.ReadMessageBuffer(mb)")
	assert.Contains(t, out, "v.From.WriteMessageBuffer(mb)")
}
