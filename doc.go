// Package lazyjson implements a JSON processing core built around three
// cooperating representations of a JSON document: a lazy cursor over the
// original text, a compact self-describing binary re-encoding of it, and a
// materialized value (either a generic tree or an instance of a caller
// defined record type).
//
// # Lazy values
//
// The lazy subpackage implements a cursor over raw JSON bytes. Constructing
// a lazy.Value only classifies the leading byte of the input; objects,
// arrays, strings and numbers are validated and parsed on demand via the
// apply-* family of methods:
//
//	v, err := lazy.New(input, lazyjson.Options{})
//	_, err = v.ApplyObject(func(key lazy.PtrString, child *lazy.Value) (walk.Signal, error) {
//	   return walk.Skip(), nil
//	})
//
// # Binary values
//
// The binary subpackage re-encodes a lazy value into a tagged binary tape
// that supports O(1) skipping of composite values and typed numeric
// storage:
//
//	tape, err := binary.Encode(v)
//	bv, err := binary.New(tape, lazyjson.Options{})
//
// # Materialization
//
// The materialize subpackage drives either representation into a generic
// container (materialize.Generic) or into an instance of a user-defined
// record type (materialize.Into), dispatching on struct tags and field types
// discovered by reflection.
//
// # Selection
//
// The walk subpackage implements the apply-each traversal primitive shared
// by the lazy and binary representations, plus a small path-navigation
// convenience layer built on top of it.
package lazyjson
