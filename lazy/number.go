package lazy

import (
	"strconv"
	"strings"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/walk"
)

// ApplyNumber requires that v is a Number, parses it, and delivers the
// result to f. Under Options.Float64 every number parses as a Go float64
// (and NaN/Inf/-Inf/leading '+' are legal); otherwise the narrowest of
// Int64, Int128, or BigInt is chosen for an integer literal, and Float64
// (or BigFloat, for a magnitude beyond the range of float64) for one with a
// fraction or exponent.
func (v *Value) ApplyNumber(f func(numeric.Value) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.Number {
		return walk.Signal{}, lazyjson.NewError(lazyjson.InvalidNumber, v.pos, "number")
	}
	next, err := scanNumber(v.buf, v.pos, v.opts.Float64)
	if err != nil {
		return walk.Signal{}, err
	}
	lit := string(v.buf[v.pos:next])

	n, err := classifyNumber(lit, v.opts.Float64)
	if err != nil {
		return walk.Signal{}, lazyjson.NewError(lazyjson.InvalidNumber, v.pos, "number")
	}

	sig, err := f(n)
	if err != nil {
		return walk.Signal{}, err
	}
	if sig.IsContinue() {
		return v.finish(next)
	}
	return sig, nil
}

// Number requires that v is a Number and returns its classified value
// directly.
func (v *Value) Number() (numeric.Value, error) {
	var out numeric.Value
	_, err := v.ApplyNumber(func(n numeric.Value) (walk.Signal, error) {
		out = n
		return walk.Continue(0), nil
	})
	return out, err
}

func classifyNumber(lit string, float64Mode bool) (numeric.Value, error) {
	if float64Mode {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return numeric.Value{}, err
		}
		return numeric.Float64Value(f), nil
	}
	if strings.ContainsAny(lit, ".eE") {
		return numeric.ParseFloat(lit)
	}
	return numeric.ParseInt(lit)
}
