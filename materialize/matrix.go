package materialize

import (
	"math/big"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/walk"
)

// Matrix requires view to be an array of arrays of numbers, all of the
// same length as the first, and builds a square [][]float64 using the
// two-pass protocol in 4.4: pass one measures the first row's length by
// short-circuiting the outer traversal as soon as it is known; pass two
// re-traverses and fills the matrix row by row. A non-array child or a row
// whose length disagrees with the first fails with a structural error.
func Matrix(view walk.View) ([][]float64, error) {
	n, err := firstRowLen(view)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	row := 0
	_, err = view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		if row >= n {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "matrix: too many rows")
		}
		col := 0
		_, err := child.ApplyEach(func(ck any, cell walk.View) (walk.Signal, error) {
			if col >= n {
				return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(cell), "matrix: row too long")
			}
			nv, err := numberOf(cell, "matrix")
			if err != nil {
				return walk.Signal{}, err
			}
			out[row][col] = toFloat64(nv)
			col++
			return walk.Continue(0), nil
		})
		if err != nil {
			return walk.Signal{}, err
		}
		if col != n {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "matrix: row too short")
		}
		row++
		return walk.Continue(0), nil
	})
	if err != nil {
		return nil, err
	}
	if row != n {
		return nil, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "matrix: not square")
	}
	return out, nil
}

// firstRowLen implements pass one: it visits only the first element of
// view, counts that element's own members, and stops immediately,
// visiting no further rows.
func firstRowLen(view walk.View) (int, error) {
	sig, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		n, err := walk.Count(child)
		if err != nil {
			return walk.Signal{}, err
		}
		return walk.Stop(n), nil
	})
	if err != nil {
		return 0, err
	}
	if sig.IsContinue() {
		return 0, lazyjson.NewError(lazyjson.TypeMismatch, posOf(view), "matrix: empty")
	}
	return sig.Payload().(int), nil
}

func toFloat64(n numeric.Value) float64 {
	switch n.Kind() {
	case numeric.KindFloat64:
		return n.Float64()
	case numeric.KindInt64:
		return float64(n.Int64())
	case numeric.KindInt128:
		f, _ := new(big.Float).SetInt(n.Int128().BigInt()).Float64()
		return f
	case numeric.KindBigInt:
		f, _ := new(big.Float).SetInt(n.BigInt()).Float64()
		return f
	case numeric.KindBigFloat:
		f, _ := n.BigFloat().Float64()
		return f
	default:
		return 0
	}
}
