package lazyjson

// Options controls the behavior of lazy parsing, binary encoding, and
// materialization. An Options value is carried immutably through every
// sub-parse derived from the value that holds it; there is no ambient
// global configuration.
type Options struct {
	// Float64 forces every JSON number to parse as a 64-bit float, and
	// legalizes the non-standard tokens NaN, Inf, -Inf, and a leading "+"
	// sign on a number.
	Float64 bool

	// JSONLines treats the top-level input as an implicit array whose
	// elements are delimited by newlines (LF, CR, or CRLF) instead of by
	// JSON array syntax. Child values parsed from a JSON-Lines document do
	// not inherit the flag.
	JSONLines bool
}

// ChildOptions returns the options to use for values nested below the
// top level of a JSON-Lines document: the same options with JSONLines
// cleared, since only the outermost sequence of values is newline
// delimited.
func (o Options) ChildOptions() Options {
	o.JSONLines = false
	return o
}

// Types overrides the default container and string types the generic
// materializer produces. Any hook left nil falls back to the package
// default (value.Map, value.Sequence, and string respectively).
type Types struct {
	// NewObject constructs the container used to hold object members. The
	// result must support a Set(key string, value any) method.
	NewObject func() ObjectBuilder

	// NewSequence constructs the container used to hold array elements. The
	// result must support an Add(value any) method.
	NewSequence func() SequenceBuilder

	// NewString converts a decoded Go string into the caller's preferred
	// string representation (for example, an interned symbol).
	NewString func(string) any
}

// ObjectBuilder is the insertion protocol the generic materializer uses to
// populate a caller-supplied object container. Duplicate keys resolve to
// "last write wins": Set is called once per member in input order, and a
// later call with the same key replaces the earlier value.
type ObjectBuilder interface {
	Set(key string, value any)
	Build() any
}

// SequenceBuilder is the insertion protocol the generic materializer uses
// to populate a caller-supplied array container.
type SequenceBuilder interface {
	Add(value any)
	Build() any
}
