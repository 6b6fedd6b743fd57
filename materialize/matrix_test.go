package materialize_test

import (
	"testing"

	"github.com/lazyjson/lazyjson/materialize"
)

func TestMatrixSquare(t *testing.T) {
	v := mustLazy(t, `[[1,2,3],[4,5,6],[7,8,9]]`)
	got, err := materialize.Matrix(v)
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	want := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("got[%d][%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestMatrixRowTooShort(t *testing.T) {
	v := mustLazy(t, `[[1,2],[3]]`)
	if _, err := materialize.Matrix(v); err == nil {
		t.Error("Matrix with a short row should fail")
	}
}

func TestMatrixRowCountMismatch(t *testing.T) {
	// The first row has length 2, so Matrix expects a 2x2 input; this
	// document supplies only one row.
	v := mustLazy(t, `[[1,2]]`)
	if _, err := materialize.Matrix(v); err == nil {
		t.Error("Matrix with fewer rows than columns should fail")
	}
}
