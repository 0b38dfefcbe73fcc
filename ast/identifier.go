package ast

import "github.com/kralicky/schemac/casing"

// Identifier is an optional source name. It displays a placeholder when
// unset (fields and data types are constructed empty and named while
// parsing) and offers camelCase/PascalCase projections for code
// generation.
type Identifier struct {
	value *string
}

// NewIdentifier returns an unset Identifier.
func NewIdentifier() Identifier {
	return Identifier{}
}

// IdentifierFrom returns an Identifier already set to name.
func IdentifierFrom(name string) Identifier {
	return Identifier{value: &name}
}

// HasValue reports whether the identifier has been set.
func (id Identifier) HasValue() bool {
	return id.value != nil
}

// Get returns the identifier's name, or a placeholder if unset.
func (id Identifier) Get() string {
	if id.value == nil {
		return "<no identifier>"
	}
	return *id.value
}

// GetOpt returns the identifier's name and whether it is set.
func (id Identifier) GetOpt() (string, bool) {
	if id.value == nil {
		return "", false
	}
	return *id.value, true
}

// Set assigns the identifier's name.
func (id *Identifier) Set(name string) {
	id.value = &name
}

// CamelCase renders the identifier in camelCase.
func (id Identifier) CamelCase() string {
	return casing.Camel(id.Get())
}

// PascalCase renders the identifier in PascalCase.
func (id Identifier) PascalCase() string {
	return casing.Pascal(id.Get())
}

func (id Identifier) String() string {
	return id.Get()
}

// Identified is implemented by anything carrying a name: data types,
// fields, aliases, structures, variants.
type Identified interface {
	Identifier() Identifier
	SetIdentifier(Identifier)
}
