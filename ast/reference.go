package ast

// Reference is a textual type name plus, after semantic analysis, an
// integer index into the owning file's data-type table. Before
// resolution the index is absent; after resolution it points at a
// terminal (non-alias) type, never at an alias.
type Reference struct {
	value *string
	id    *int
}

// NewReference returns an unresolved Reference with no name.
func NewReference() Reference {
	return Reference{}
}

// ReferenceFrom returns an unresolved Reference naming target.
func ReferenceFrom(target string) Reference {
	return Reference{value: &target}
}

// HasValue reports whether the reference names a target at all.
func (r Reference) HasValue() bool {
	return r.value != nil
}

// Get returns the referenced name, or a placeholder if unset.
func (r Reference) Get() string {
	if r.value == nil {
		return "<no reference>"
	}
	return *r.value
}

// GetOpt returns the referenced name and whether it is set.
func (r Reference) GetOpt() (string, bool) {
	if r.value == nil {
		return "", false
	}
	return *r.value, true
}

// Set assigns the referenced name. A previously resolved id is kept until
// SetID is called again.
func (r *Reference) Set(target string) {
	r.value = &target
}

// HasID reports whether the reference has been resolved to a data-type
// index.
func (r Reference) HasID() bool {
	return r.id != nil
}

// GetID returns the resolved data-type index and whether it is set.
func (r Reference) GetID() (int, bool) {
	if r.id == nil {
		return 0, false
	}
	return *r.id, true
}

// SetID resolves the reference to a data-type index. Semantic analysis
// calls this for every field/alias reference, first pointing it at the
// declared target and then, during alias collapse, rewriting it to the
// terminal non-alias type.
func (r *Reference) SetID(id int) {
	r.id = &id
}

func (r Reference) String() string {
	return r.Get()
}
