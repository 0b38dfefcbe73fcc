// Package linker performs semantic analysis over a parsed [ast.File]:
// building the name-to-index symbol table and reporting redefinitions,
// resolving every field/alias reference,
// detecting cyclical dependencies, collapsing alias chains down to their
// terminal type, and propagating the MaxRank/size attributes used by
// code generation.
package linker

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/reporter"
)

// symbolTable maps a data type's declared name to its index in the
// file's DataTypes slice. It is backed by an adaptive radix tree since
// schema type names share the same prefix-heavy shape (PascalCase
// identifiers) that the structure rewards.
type symbolTable struct {
	tree art.Tree
}

func newSymbolTable() *symbolTable {
	return &symbolTable{tree: art.New()}
}

// declare records name -> index, reporting a redefinition diagnostic and
// returning false if name is already bound. The first declaration wins;
// a later duplicate is rejected but does not replace the existing
// binding, so lookups during the rest of analysis stay stable.
func (t *symbolTable) declare(name string, index int, handler *reporter.Handler) bool {
	key := art.Key(name)
	if _, found := t.tree.Search(key); found {
		handler.Add(reporter.RedefinedDataType(name))
		return false
	}
	t.tree.Insert(key, index)
	return true
}

func (t *symbolTable) lookup(name string) (int, bool) {
	v, found := t.tree.Search(art.Key(name))
	if !found {
		return 0, false
	}
	return v.(int), true
}

// buildSymbolTable walks every data type in f and declares its name,
// reporting redefinitions. Built-in primitives and the size/usize
// aliases are declared first since [ast.NewFile] seeds them before any
// user declaration.
func buildSymbolTable(f *ast.File, handler *reporter.Handler) *symbolTable {
	table := newSymbolTable()
	for i, dt := range f.DataTypes() {
		table.declare(dt.Identifier().Get(), i, handler)
	}
	return table
}
