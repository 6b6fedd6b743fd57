package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// Object is a read-only projection of a Value known to be an Object. Its
// Len and iteration operations are O(members) and re-parse the underlying
// text on every call; it does not cache anything.
type Object struct{ v *Value }

// AsObject requires that v is an Object and returns the Object projection.
func (v *Value) AsObject() (Object, error) {
	if v.kind != lazyjson.Object {
		return Object{}, lazyjson.NewError(lazyjson.ExpectedOpeningObjectChar, v.pos, "object")
	}
	return Object{v: v}, nil
}

// Len counts the members of o by making a full counting pass.
func (o Object) Len() (int, error) {
	n := 0
	v := *o.v
	_, err := v.ApplyObject(func(PtrString, *Value) (walk.Signal, error) {
		n++
		return walk.Skip(), nil
	})
	return n, err
}

// Each visits every member of o in order, calling f with the decoded key
// and the member's value.
func (o Object) Each(f func(key string, value *Value) error) error {
	v := *o.v
	_, err := v.ApplyObject(func(key PtrString, child *Value) (walk.Signal, error) {
		k, derr := key.Decode()
		if derr != nil {
			return walk.Signal{}, derr
		}
		if err := f(k, child); err != nil {
			return walk.Signal{}, err
		}
		return walk.Skip(), nil
	})
	return err
}

// Array is a read-only projection of a Value known to be an Array.
type Array struct{ v *Value }

// AsArray requires that v is an Array and returns the Array projection.
func (v *Value) AsArray() (Array, error) {
	if v.kind != lazyjson.Array {
		return Array{}, lazyjson.NewError(lazyjson.ExpectedOpeningArrayChar, v.pos, "array")
	}
	return Array{v: v}, nil
}

// Len counts the elements of a by making a full counting pass.
func (a Array) Len() (int, error) {
	n := 0
	v := *a.v
	_, err := v.ApplyArray(func(int, *Value) (walk.Signal, error) {
		n++
		return walk.Skip(), nil
	})
	return n, err
}

// Each visits every element of a in order.
func (a Array) Each(f func(index int, value *Value) error) error {
	v := *a.v
	_, err := v.ApplyArray(func(index int, child *Value) (walk.Signal, error) {
		if err := f(index, child); err != nil {
			return walk.Signal{}, err
		}
		return walk.Skip(), nil
	})
	return err
}
