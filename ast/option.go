package ast

// OptionMap holds an owner's per-type options: name to an ordered
// sequence of argument expressions. Names are unique per owner; adding a
// duplicate name overwrites the previous entry.
type OptionMap map[string][]*Expression

// Optioned is implemented by anything carrying an option map: File,
// Structure, Variant. See Fielded for why this is modeled as a shared
// capability interface rather than three separate option-handling code
// paths in the parser.
type Optioned interface {
	Options() OptionMap
	AddOption(name string, args []*Expression) bool
	Option(name string) ([]*Expression, bool)

	// IsOptionEnabled reports whether a single-argument option folded to
	// a truthy value (True or Null — a bare `opt name;` counts as
	// enabled).
	IsOptionEnabled(name string) bool
	// IsOptionEnabledAt reports the same thing for the argument at index
	// in a multi-argument option, e.g. the reader/writer pair in
	// `opt message_buffer(reader, writer);`.
	IsOptionEnabledAt(name string, index int) bool
}

// optioned is embedded by Structure, Variant and File to implement
// Optioned without repeating the map bookkeeping three times.
type optioned struct {
	options OptionMap
}

func newOptioned() optioned {
	return optioned{options: make(OptionMap)}
}

func (o *optioned) Options() OptionMap { return o.options }

func (o *optioned) AddOption(name string, args []*Expression) bool {
	_, existed := o.options[name]
	o.options[name] = args
	return !existed
}

func (o *optioned) Option(name string) ([]*Expression, bool) {
	args, ok := o.options[name]
	return args, ok
}

func (o *optioned) IsOptionEnabled(name string) bool {
	return o.IsOptionEnabledAt(name, 0)
}

func (o *optioned) IsOptionEnabledAt(name string, index int) bool {
	args, ok := o.options[name]
	if !ok || index >= len(args) {
		return false
	}
	arg := args[index]
	if arg == nil || arg.Kind != ExprValue {
		return false
	}
	return arg.Value.IsTrue()
}
