// Package materialize drives a lazy or binary view into either a generic
// tree of maps, sequences, strings, numbers, booleans, and null, or an
// instance of a caller-supplied record type. Both paths share the same
// walk.View traversal, so they work identically over lazy.Value and
// binary.Value.
package materialize

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/value"
	"github.com/lazyjson/lazyjson/walk"
)

// scalar is implemented by both lazy.Value and binary.Value for the leaf
// kinds that don't go through the walk.View composite protocol.
type scalar interface {
	Kind() lazyjson.Kind
}

// stringValue is implemented by both lazy.Value (via a decode step) and
// binary.Value (whose strings are already decoded on the tape), giving
// Generic a single way to read a String kind regardless of representation.
type stringValue interface {
	DecodedString() (string, error)
}

// numberValue is implemented by both lazy.Value and binary.Value, which
// classify their Number/Int/Float kind into the same numeric.Value.
type numberValue interface {
	Number() (numeric.Value, error)
}

// positioned is implemented by both lazy.Value and binary.Value, giving
// every TypeMismatch raised in this package the offending byte offset
// spec.md §7 requires, regardless of which representation backs view.
type positioned interface {
	Pos() int
}

// posOf returns view's byte offset, or 0 if view doesn't report one.
func posOf(view walk.View) int {
	if p, ok := view.(positioned); ok {
		return p.Pos()
	}
	return 0
}

// Generic materializes view into a tree of Go values: Map/Sequence (or the
// caller's Types hooks), string, one of the numeric ladder's Go types,
// bool, or value.Null. Duplicate object keys resolve to "last write wins".
func Generic(view walk.View, opts lazyjson.Options, types lazyjson.Types) (any, error) {
	k, ok := view.(scalar)
	if !ok {
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "value")
	}
	switch k.Kind() {
	case lazyjson.Object:
		return genericObject(view, opts, types)
	case lazyjson.Array:
		return genericArray(view, opts, types)
	case lazyjson.String:
		return genericString(view, types)
	case lazyjson.Number, lazyjson.Int, lazyjson.Float:
		return genericNumber(view, opts)
	case lazyjson.True:
		return true, nil
	case lazyjson.False:
		return false, nil
	case lazyjson.Null:
		return value.Null{}, nil
	default:
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "value")
	}
}

func newObjectBuilder(types lazyjson.Types) lazyjson.ObjectBuilder {
	if types.NewObject != nil {
		return types.NewObject()
	}
	return value.NewMap()
}

func newSequenceBuilder(types lazyjson.Types) lazyjson.SequenceBuilder {
	if types.NewSequence != nil {
		return types.NewSequence()
	}
	return value.NewSequence()
}

func genericObject(view walk.View, opts lazyjson.Options, types lazyjson.Types) (any, error) {
	b := newObjectBuilder(types)
	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		name, ok := key.(string)
		if !ok {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "object key")
		}
		mv, err := Generic(child, opts, types)
		if err != nil {
			return walk.Signal{}, err
		}
		b.Set(name, mv)
		return walk.Continue(0), nil
	})
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func genericArray(view walk.View, opts lazyjson.Options, types lazyjson.Types) (any, error) {
	b := newSequenceBuilder(types)
	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		mv, err := Generic(child, opts, types)
		if err != nil {
			return walk.Signal{}, err
		}
		b.Add(mv)
		return walk.Continue(0), nil
	})
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func genericString(view walk.View, types lazyjson.Types) (any, error) {
	sv, ok := view.(stringValue)
	if !ok {
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "string")
	}
	out, err := sv.DecodedString()
	if err != nil {
		return nil, err
	}
	if types.NewString != nil {
		return types.NewString(out), nil
	}
	return out, nil
}

func genericNumber(view walk.View, opts lazyjson.Options) (any, error) {
	nv, ok := view.(numberValue)
	if !ok {
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "number")
	}
	n, err := nv.Number()
	if err != nil {
		return nil, err
	}
	return value.Number(n), nil
}
