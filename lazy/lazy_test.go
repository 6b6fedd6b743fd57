package lazy_test

import (
	"testing"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/lazy"
	"github.com/lazyjson/lazyjson/walk"
)

func mustValue(t *testing.T, input string, opts lazyjson.Options) *lazy.Value {
	t.Helper()
	v, err := lazy.New([]byte(input), opts)
	if err != nil {
		t.Fatalf("lazy.New(%q) failed: %v", input, err)
	}
	return v
}

func TestKindInference(t *testing.T) {
	tests := []struct {
		input string
		want  lazyjson.Kind
	}{
		{`{}`, lazyjson.Object},
		{` [1,2]`, lazyjson.Array},
		{`"hi"`, lazyjson.String},
		{"\t-1.5e3", lazyjson.Number},
		{"true", lazyjson.True},
		{"false", lazyjson.False},
		{"null", lazyjson.Null},
	}
	for _, test := range tests {
		v := mustValue(t, test.input, lazyjson.Options{})
		if got := v.Kind(); got != test.want {
			t.Errorf("Kind(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestMalformedKeywordRejected(t *testing.T) {
	if _, err := lazy.New([]byte("nope"), lazyjson.Options{}); err == nil {
		t.Error("lazy.New(nope) should have failed")
	}
}

func TestSkip(t *testing.T) {
	const input = `{"a":1,"b":[1,2,3],"c":"text"} `
	v := mustValue(t, input, lazyjson.Options{})
	pos, err := v.Skip()
	if err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if want := len(`{"a":1,"b":[1,2,3],"c":"text"}`); pos != want {
		t.Errorf("Skip position = %d, want %d", pos, want)
	}
}

func TestTrailingContentRejected(t *testing.T) {
	v := mustValue(t, `1 2`, lazyjson.Options{})
	if _, err := v.Skip(); err == nil {
		t.Error("Skip should reject trailing content after the root value")
	}
}

func TestApplyObjectOrderAndShortCircuit(t *testing.T) {
	v := mustValue(t, `{"a":1,"b":2,"c":3}`, lazyjson.Options{})
	var seen []string
	sig, err := v.ApplyObject(func(key lazy.PtrString, child *lazy.Value) (walk.Signal, error) {
		k, _ := key.Decode()
		seen = append(seen, k)
		if k == "b" {
			return walk.Stop("stopped"), nil
		}
		return walk.Skip(), nil
	})
	if err != nil {
		t.Fatalf("ApplyObject failed: %v", err)
	}
	if want := []string{"a", "b"}; !equalStrings(seen, want) {
		t.Errorf("visited keys = %v, want %v (short-circuit should stop at b)", seen, want)
	}
	if sig.IsContinue() || sig.Payload() != "stopped" {
		t.Errorf("signal = %+v, want short-circuit payload %q", sig, "stopped")
	}
}

func TestApplyArrayPositional(t *testing.T) {
	v := mustValue(t, `[10,20,30]`, lazyjson.Options{})
	var got []int64
	_, err := v.ApplyArray(func(index int, child *lazy.Value) (walk.Signal, error) {
		n, err := child.Number()
		if err != nil {
			return walk.Signal{}, err
		}
		got = append(got, n.Int64())
		return walk.Skip(), nil
	})
	if err != nil {
		t.Fatalf("ApplyArray failed: %v", err)
	}
	want := []int64{10, 20, 30}
	for i, g := range got {
		if g != want[i] {
			t.Errorf("element %d = %d, want %d", i, g, want[i])
		}
	}
}

func TestJSONLinesDelimiters(t *testing.T) {
	tests := []string{
		"{\"a\":1}\n{\"a\":2}",
		"{\"a\":1}\r{\"a\":2}",
		"{\"a\":1}\r\n{\"a\":2}",
		"{\"a\":1}\n\n{\"a\":2}\n",
	}
	for _, input := range tests {
		v := mustValue(t, input, lazyjson.Options{JSONLines: true})
		n := 0
		_, err := v.ApplyArray(func(index int, child *lazy.Value) (walk.Signal, error) {
			n++
			return walk.Skip(), nil
		})
		if err != nil {
			t.Fatalf("ApplyArray(%q) failed: %v", input, err)
		}
		if n != 2 {
			t.Errorf("ApplyArray(%q) visited %d elements, want 2", input, n)
		}
	}
}

func TestEscapedStringDecode(t *testing.T) {
	v := mustValue(t, `"a\nb\tcé"`, lazyjson.Options{})
	s, err := v.DecodedString()
	if err != nil {
		t.Fatalf("DecodedString failed: %v", err)
	}
	if want := "a\nb\tcé"; s != want {
		t.Errorf("DecodedString = %q, want %q", s, want)
	}
}

func TestNumberPromotion(t *testing.T) {
	tests := []struct {
		input string
		want  numeric.Kind
	}{
		{"5139", numeric.KindInt64},
		{"-15", numeric.KindInt64},
		{"2.3", numeric.KindFloat64},
		{"5e+9", numeric.KindFloat64},
	}
	for _, test := range tests {
		v := mustValue(t, test.input, lazyjson.Options{})
		n, err := v.Number()
		if err != nil {
			t.Fatalf("Number(%q) failed: %v", test.input, err)
		}
		if n.Kind() != test.want {
			t.Errorf("Number(%q).Kind() = %v, want %v", test.input, n.Kind(), test.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
