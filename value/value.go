// Package value implements the default generic container types produced
// by untyped materialization: Map, Sequence, and the numeric ladder
// wrappers. Callers that want a different container shape supply their
// own lazyjson.Types hooks instead of using these.
package value

import (
	"math/big"

	"github.com/lazyjson/lazyjson/internal/numeric"
)

// Map is the default ObjectBuilder target: an insertion-order-agnostic
// string-keyed map, per the contract's explicit non-guarantee of key
// order in the generic container.
type Map map[string]any

// NewMap constructs an empty Map. The generic materializer uses it when
// lazyjson.Types.NewObject is nil.
func NewMap() *Map { m := make(Map); return &m }

// Set implements lazyjson.ObjectBuilder. A repeated key replaces its
// earlier value, matching "last write wins".
func (m *Map) Set(key string, v any) { (*m)[key] = v }

// Build implements lazyjson.ObjectBuilder.
func (m *Map) Build() any { return *m }

// Sequence is the default SequenceBuilder target: an ordered list of
// materialized elements.
type Sequence []any

// NewSequence constructs an empty Sequence. The generic materializer uses
// it when lazyjson.Types.NewSequence is nil.
func NewSequence() *Sequence { s := make(Sequence, 0); return &s }

// Add implements lazyjson.SequenceBuilder.
func (s *Sequence) Add(v any) { *s = append(*s, v) }

// Build implements lazyjson.SequenceBuilder.
func (s *Sequence) Build() any { return *s }

// Null is the sentinel the generic materializer produces for JSON null.
type Null struct{}

// Missing is a sentinel type for a value that is absent rather than null.
// The materializers in this module do not produce it: a record field with
// no corresponding JSON member keeps its declared default or its Go zero
// value.
type Missing struct{}

// Number converts a classified numeric.Value into the Go type the generic
// materializer exposes for it: int64, numeric.Int128, *big.Int, float64, or
// *big.Float, in the narrowest-fit order the promotion ladder guarantees.
func Number(n numeric.Value) any {
	switch n.Kind() {
	case numeric.KindInt64:
		return n.Int64()
	case numeric.KindInt128:
		return n.Int128()
	case numeric.KindBigInt:
		return n.BigInt()
	case numeric.KindFloat64:
		return n.Float64()
	case numeric.KindBigFloat:
		return n.BigFloat()
	default:
		return nil
	}
}

// AsBigInt widens any of the integer ladder's Go representations to a
// *big.Int, for callers that need a single arbitrary-precision type
// regardless of which rung an integer landed on.
func AsBigInt(v any) (*big.Int, bool) {
	switch t := v.(type) {
	case int64:
		return big.NewInt(t), true
	case numeric.Int128:
		return t.BigInt(), true
	case *big.Int:
		return t, true
	default:
		return nil, false
	}
}
