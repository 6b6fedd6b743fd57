package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// ApplyEach implements walk.View, unifying object and array traversal
// behind a single driver used by selection, counting, and materialization.
// It fails with "not selectable" on a scalar value.
func (v *Value) ApplyEach(f func(key any, child walk.View) (walk.Signal, error)) (walk.Signal, error) {
	switch v.kind {
	case lazyjson.Object:
		return v.ApplyObject(func(key PtrString, child *Value) (walk.Signal, error) {
			k, err := key.Decode()
			if err != nil {
				return walk.Signal{}, err
			}
			return f(k, child)
		})
	case lazyjson.Array:
		return v.ApplyArray(func(index int, child *Value) (walk.Signal, error) {
			return f(index, child)
		})
	default:
		return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, v.pos, "not selectable")
	}
}
