// Package numeric implements the narrowest-fit numeric promotion ladder
// used by materialization: Int64 -> Int128 -> BigInt -> Float64 -> BigFloat.
//
// The ladder mirrors the classification several JSON-adjacent evaluators in
// the wild perform when turning a decoded number into a native value: try a
// machine integer first, fall back to arbitrary precision only when the
// literal's magnitude or shape demands it, and fall back to floating point
// only when the literal has a fractional or exponent part.
package numeric

import (
	"math/big"
	"strconv"
)

// Value is the result of classifying a JSON number literal. Exactly one of
// the typed accessors is meaningful, as indicated by Kind.
type Value struct {
	kind Kind
	i64  int64
	i128 Int128
	big  *big.Int
	f64  float64
	bigf *big.Float
}

// Kind identifies which representation a Value holds.
type Kind byte

const (
	KindInt64 Kind = iota
	KindInt128
	KindBigInt
	KindFloat64
	KindBigFloat
)

// Float64Value wraps f as a classified Value, bypassing the promotion
// ladder. Used when the caller has already decided every number must be a
// 64-bit float (Options.Float64).
func Float64Value(f float64) Value { return Value{kind: KindFloat64, f64: f} }

// Int64Value wraps i as a classified Value. Used by the binary reader,
// which already knows an integer's width from its tag and has no literal
// to reparse.
func Int64Value(i int64) Value { return Value{kind: KindInt64, i64: i} }

// Int128Value wraps an Int128 as a classified Value.
func Int128Value(n Int128) Value { return Value{kind: KindInt128, i128: n} }

// BigIntValue wraps bi as a classified Value.
func BigIntValue(bi *big.Int) Value { return Value{kind: KindBigInt, big: bi} }

func (v Value) Kind() Kind       { return v.kind }
func (v Value) Int64() int64     { return v.i64 }
func (v Value) Int128() Int128   { return v.i128 }
func (v Value) BigInt() *big.Int { return v.big }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) BigFloat() *big.Float { return v.bigf }

// Int128 is a minimal 128-bit two's-complement integer, sufficient to carry
// a value that overflows int64 but fits in 128 bits before falling back to
// an arbitrary-precision big.Int. There is no arithmetic here beyond what
// classification and binary encoding require.
type Int128 struct {
	Hi int64
	Lo uint64
}

// BigInt converts n to an arbitrary-precision integer.
func (n Int128) BigInt() *big.Int {
	hi := big.NewInt(n.Hi)
	lo := new(big.Int).SetUint64(n.Lo)
	return new(big.Int).Add(new(big.Int).Lsh(hi, 64), lo)
}

// ParseInt classifies an integer literal (no '.', 'e', or 'E') into the
// narrowest of Int64, Int128, or BigInt.
func ParseInt(lit string) (Value, error) {
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Value{kind: KindInt64, i64: n}, nil
	}
	bi, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return Value{}, strconv.ErrSyntax
	}
	if lo, hi, ok := toInt128(bi); ok {
		return Value{kind: KindInt128, i128: Int128{Hi: hi, Lo: lo}}, nil
	}
	return Value{kind: KindBigInt, big: bi}, nil
}

// ParseFloat classifies a floating-point literal into Float64 (rounded to
// the nearest float64), falling back to BigFloat only when the literal's
// magnitude is beyond the range of float64.
func ParseFloat(lit string) (Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err == nil {
		return Value{kind: KindFloat64, f64: f}, nil
	}
	if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
		return Value{}, err
	}
	bf, _, err := big.ParseFloat(lit, 10, 200, big.ToNearestEven)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindBigFloat, bigf: bf}, nil
}

const int128Bits = 128

func toInt128(bi *big.Int) (lo uint64, hi int64, ok bool) {
	if bi.BitLen() > int128Bits-1 {
		return 0, 0, false
	}
	abs := new(big.Int).Abs(bi)
	words := abs.Bits()
	var lov, hiv uint64
	for i, w := range words {
		switch i {
		case 0:
			lov = uint64(w)
		case 1:
			hiv = uint64(w)
		default:
			return 0, 0, false
		}
	}
	if bi.Sign() < 0 {
		// Two's-complement negation of the 128-bit pair (hiv:lov).
		lov = ^lov + 1
		hiv = ^hiv
		if lov == 0 {
			hiv++
		}
	}
	return lov, int64(hiv), true
}
