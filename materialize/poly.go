package materialize

import (
	"strings"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// Discriminate reads the decoded string value of view's named member
// without materializing anything else, the "sniff a discriminant field
// with the lazy view" pattern recommended for polymorphic targets: the
// caller maps the result to a concrete Go type and calls Materialize with
// it.
func Discriminate(view walk.View, field string) (string, error) {
	child, err := walk.Get(view, field)
	if err != nil {
		return "", err
	}
	sv, ok := child.(stringValue)
	if !ok {
		return "", lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), field)
	}
	return sv.DecodedString()
}

// MatchEnum returns the element of variants that case-insensitively
// equals s. Enumeration variant lookup is case-insensitive by contract;
// everything else in the record materializer matches keys exactly.
func MatchEnum(s string, variants []string) (string, bool) {
	for _, v := range variants {
		if strings.EqualFold(s, v) {
			return v, true
		}
	}
	return "", false
}

// UnionVariant is one arm of a scalar union: Accepts reports whether the
// variant can represent a given JSON kind, and Build materializes it.
type UnionVariant struct {
	Accepts func(lazyjson.Kind) bool
	Build   func(view walk.View) (any, error)
}

// Union dispatches view to the first variant whose Accepts reports true,
// except that a Null view is tried against every Null-admitting variant
// first, ahead of variants that would otherwise match by declaration
// order.
func Union(view walk.View, variants []UnionVariant) (any, error) {
	k, ok := view.(scalar)
	if !ok {
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "union")
	}
	kind := k.Kind()
	if kind == lazyjson.Null {
		for _, v := range variants {
			if v.Accepts(lazyjson.Null) {
				return v.Build(view)
			}
		}
	}
	for _, v := range variants {
		if v.Accepts(kind) {
			return v.Build(view)
		}
	}
	return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "union: no matching variant")
}
