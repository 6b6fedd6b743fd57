package value

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lazyjson/lazyjson/internal/numeric"
)

func TestMapSetLastWriteWins(t *testing.T) {
	m := NewMap()
	m.Set("a", 1)
	m.Set("a", 2)
	got := m.Build().(Map)
	if got["a"] != 2 {
		t.Errorf("m[a] = %v, want 2 (last write wins)", got["a"])
	}
}

func TestSequenceAddPreservesOrder(t *testing.T) {
	s := NewSequence()
	s.Add(1)
	s.Add(2)
	s.Add(3)
	got := s.Build().(Sequence)
	want := Sequence{1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence order mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberLadder(t *testing.T) {
	i64, err := numeric.ParseInt("42")
	if err != nil {
		t.Fatalf("ParseInt failed: %v", err)
	}
	if got := Number(i64); got != int64(42) {
		t.Errorf("Number(int64 rung) = %v (%T), want int64(42)", got, got)
	}

	big128, err := numeric.ParseInt("9223372036854775808")
	if err != nil {
		t.Fatalf("ParseInt failed: %v", err)
	}
	if _, ok := Number(big128).(numeric.Int128); !ok {
		t.Errorf("Number(int128 rung) = %T, want numeric.Int128", Number(big128))
	}

	f64, err := numeric.ParseFloat("2.5")
	if err != nil {
		t.Fatalf("ParseFloat failed: %v", err)
	}
	if got := Number(f64); got != 2.5 {
		t.Errorf("Number(float64 rung) = %v, want 2.5", got)
	}
}

func TestAsBigIntWidensEveryRung(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"int64", int64(42), "42"},
		{"int128", numeric.Int128{Hi: 1, Lo: 0}, "18446744073709551616"},
		{"bigint", big.NewInt(7), "7"},
	}
	for _, test := range tests {
		bi, ok := AsBigInt(test.v)
		if !ok {
			t.Errorf("AsBigInt(%s) failed to widen", test.name)
			continue
		}
		if bi.String() != test.want {
			t.Errorf("AsBigInt(%s) = %s, want %s", test.name, bi.String(), test.want)
		}
	}

	if _, ok := AsBigInt("not a number"); ok {
		t.Error("AsBigInt(string) should report ok=false")
	}
}
