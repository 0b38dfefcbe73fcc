package linker

import (
	"github.com/kralicky/schemac/ast"
	"github.com/kralicky/schemac/reporter"
)

// Link resolves every reference in f, detects cyclical dependencies,
// collapses alias chains to their terminal type, and computes each data
// type's MaxRank and Size. It reports diagnostics to handler; reference
// resolution keeps going after a bad reference so every redefinition and
// undeclared name surfaces in one pass, but when the handler holds any
// diagnostic after resolution, alias collapse and cycle detection are
// skipped. Callers should check handler.HasErrors() before trusting the
// result for code generation.
func Link(f *ast.File, handler *reporter.Handler) {
	table := buildSymbolTable(f, handler)

	resolveReferences(f, table, handler)
	if handler.HasErrors() {
		return
	}

	collapseAliases(f)

	l := &linker{file: f, handler: handler}
	l.run()
}

// resolveReferences walks every field of every structure/variant plus
// every alias's target, setting each [ast.Reference]'s resolved index.
// An unresolvable name is reported once per occurrence.
func resolveReferences(f *ast.File, table *symbolTable, handler *reporter.Handler) {
	for _, dt := range f.DataTypes() {
		switch dt.Kind() {
		case ast.KindAlias:
			resolveOne(dt.Alias().Reference(), table, handler)
		case ast.KindStructure, ast.KindVariant:
			fielded := dt.Fielded()
			seen := make(map[string]bool)
			for i := 0; i < len(fielded.Fields()); i++ {
				field, _ := fielded.Field(i)
				name := field.Identifier().Get()
				if seen[name] {
					handler.Add(reporter.RedefinedField(name))
				}
				seen[name] = true
				resolveOne(field.Reference(), table, handler)
			}
		}
	}
}

func resolveOne(ref *ast.Reference, table *symbolTable, handler *reporter.Handler) {
	name, ok := ref.GetOpt()
	if !ok {
		return
	}
	idx, found := table.lookup(name)
	if !found {
		handler.Add(reporter.UndeclaredDataType(name))
		return
	}
	ref.SetID(idx)
}

// collapseAliases rewrites every reference that points at an alias so it
// points directly at that alias's terminal (non-alias) type instead.
// Aliasing an alias is legal, so the walk follows the chain to its end;
// a chain that cycles back on itself is caught by the cycle detector
// that runs afterward in [linker.run], not here.
func collapseAliases(f *ast.File) {
	terminal := func(start int) int {
		idx := start
		for steps := 0; steps < len(f.DataTypes()); steps++ {
			dt, ok := f.DataType(idx)
			if !ok || !dt.IsAlias() {
				return idx
			}
			next, ok := dt.Alias().Reference().GetID()
			if !ok {
				return idx
			}
			idx = next
		}
		return idx
	}

	for _, dt := range f.DataTypes() {
		switch dt.Kind() {
		case ast.KindStructure, ast.KindVariant:
			fielded := dt.Fielded()
			for i := 0; i < len(fielded.Fields()); i++ {
				field, _ := fielded.Field(i)
				if id, ok := field.Reference().GetID(); ok {
					field.Reference().SetID(terminal(id))
				}
			}
		}
	}
}

// linker holds the mutable state of the dependency-graph walk: the file
// being analyzed and a visitation mark per data-type index.
type linker struct {
	file    *ast.File
	handler *reporter.Handler

	state []nodeState
}

type nodeState int

const (
	unvisited nodeState = iota
	onStack
	done
)

// frame is one entry on the explicit DFS stack: the data-type index
// being visited and which of its field dependencies to follow next.
type frame struct {
	index    int
	depIndex int
	deps     []int
}

// run performs an iterative (non-recursive) depth-first walk over the
// dependency graph implied by every structure/variant's field
// references, detecting cycles and propagating MaxRank and size on
// unwind. One DFS is started per not-yet-visited data type so the whole
// file is covered regardless of declaration order.
func (l *linker) run() {
	n := len(l.file.DataTypes())
	l.state = make([]nodeState, n)

	for root := 0; root < n; root++ {
		if l.state[root] != unvisited {
			continue
		}
		l.walk(root)
	}
}

func (l *linker) dependenciesOf(index int) []int {
	dt, ok := l.file.DataType(index)
	if !ok {
		return nil
	}
	switch dt.Kind() {
	case ast.KindAlias:
		if id, ok := dt.Alias().Reference().GetID(); ok {
			return []int{id}
		}
		return nil
	case ast.KindStructure, ast.KindVariant:
		fielded := dt.Fielded()
		var deps []int
		for i := 0; i < len(fielded.Fields()); i++ {
			field, _ := fielded.Field(i)
			if id, ok := field.Reference().GetID(); ok {
				deps = append(deps, id)
			}
		}
		return deps
	default:
		return nil
	}
}

// walk runs one DFS rooted at start using an explicit stack of frames,
// marking nodes onStack while they are being explored and done once
// every dependency has unwound. Hitting a node already onStack is a
// cycle; hitting one already done just contributes its known size/rank
// without re-descending.
func (l *linker) walk(start int) {
	stack := []*frame{{index: start, deps: l.dependenciesOf(start)}}
	l.state[start] = onStack

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.depIndex >= len(top.deps) {
			// Every dependency visited; unwind this node.
			stack = stack[:len(stack)-1]
			l.state[top.index] = done

			rank := 0
			if len(stack) > 0 {
				rank = len(stack)
			}
			if dt, ok := l.file.DataType(top.index); ok {
				dt.UpdateMaxRank(rank)
				l.propagateSize(top.index)
			}
			continue
		}

		dep := top.deps[top.depIndex]
		top.depIndex++

		switch l.state[dep] {
		case unvisited:
			l.state[dep] = onStack
			stack = append(stack, &frame{index: dep, deps: l.dependenciesOf(dep)})
		case onStack:
			l.reportCycle(stack, dep)
		case done:
			// already resolved, nothing further to do
		}
	}
}

// propagateSize folds the resolved size of index's dependencies into
// its owner's MinSize: additive for a structure, max for a variant (see
// [ast.Structure.UpdateMinSize] / [ast.Variant.UpdateMinSize]). Aliases
// contribute no size of their own and are skipped; their terminal type
// was already folded into every referencing field by collapseAliases.
func (l *linker) propagateSize(index int) {
	dt, ok := l.file.DataType(index)
	if !ok {
		return
	}
	fielded := dt.Fielded()
	if fielded == nil {
		return
	}
	for i := 0; i < len(fielded.Fields()); i++ {
		field, _ := fielded.Field(i)
		id, ok := field.Reference().GetID()
		if !ok {
			continue
		}
		depType, ok := l.file.DataType(id)
		if !ok {
			continue
		}
		fielded.UpdateMinSize(depType.Size())
	}
}

// reportCycle renders the cycle from the first onStack occurrence of
// dep through the top of the stack back to dep, naming every type
// identifier involved.
func (l *linker) reportCycle(stack []*frame, dep int) {
	var names []string
	start := 0
	for i, fr := range stack {
		if fr.index == dep {
			start = i
			break
		}
	}
	for _, fr := range stack[start:] {
		if dt, ok := l.file.DataType(fr.index); ok {
			names = append(names, dt.Identifier().Get())
		}
	}
	if dt, ok := l.file.DataType(dep); ok {
		names = append(names, dt.Identifier().Get())
	}
	l.handler.Add(reporter.CyclicalDependency(names))
}
