package ast

// Alias is a rename: an identifier plus a reference to another type.
// Aliases contribute zero bytes to wire size; semantic analysis collapses
// every field reference that points at an alias down to the alias
// chain's terminal non-alias type, so generator code never has to chase
// the chain itself.
type Alias struct {
	identifier Identifier
	reference  Reference
}

func NewAlias() *Alias {
	return &Alias{identifier: NewIdentifier(), reference: NewReference()}
}

// AliasFrom returns an Alias already named and targeted, used to seed a
// new File with the built-in `size`/`usize` aliases.
func AliasFrom(name, target string) *Alias {
	return &Alias{identifier: IdentifierFrom(name), reference: ReferenceFrom(target)}
}

func (a *Alias) Identifier() Identifier      { return a.identifier }
func (a *Alias) SetIdentifier(id Identifier) { a.identifier = id }

func (a *Alias) Reference() *Reference { return &a.reference }
