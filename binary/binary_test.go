package binary_test

import (
	"testing"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/binary"
	"github.com/lazyjson/lazyjson/lazy"
	"github.com/lazyjson/lazyjson/walk"
)

func encode(t *testing.T, input string) []byte {
	t.Helper()
	v, err := lazy.New([]byte(input), lazyjson.Options{})
	if err != nil {
		t.Fatalf("lazy.New(%q) failed: %v", input, err)
	}
	tape, err := binary.Encode(v)
	if err != nil {
		t.Fatalf("binary.Encode(%q) failed: %v", input, err)
	}
	return tape
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const input = `{"a":1,"b":[true,false,null,"x"],"c":-2.5,"big":123456789012345678901234567890}`
	tape := encode(t, input)
	bv, err := binary.New(tape, lazyjson.Options{})
	if err != nil {
		t.Fatalf("binary.New failed: %v", err)
	}
	if bv.Kind() != lazyjson.Object {
		t.Fatalf("Kind() = %v, want Object", bv.Kind())
	}

	var gotA int64
	var gotC float64
	var bigKind lazyjson.Kind
	_, err = bv.ApplyObject(func(key string, child *binary.Value) (walk.Signal, error) {
		switch key {
		case "a":
			n, err := child.Number()
			if err != nil {
				return walk.Signal{}, err
			}
			gotA = n.Int64()
		case "c":
			n, err := child.Number()
			if err != nil {
				return walk.Signal{}, err
			}
			gotC = n.Float64()
		case "big":
			bigKind = child.Kind()
		}
		return walk.Skip(), nil
	})
	if err != nil {
		t.Fatalf("ApplyObject failed: %v", err)
	}
	if gotA != 1 {
		t.Errorf("a = %d, want 1", gotA)
	}
	if gotC != -2.5 {
		t.Errorf("c = %v, want -2.5", gotC)
	}
	if bigKind != lazyjson.Int {
		t.Errorf("big.Kind() = %v, want Int", bigKind)
	}
}

func TestSkipIsConstantTimeViaLengthField(t *testing.T) {
	tape := encode(t, `{"a":[1,2,3,4,5,6,7,8,9,10]}`)
	bv, err := binary.New(tape, lazyjson.Options{})
	if err != nil {
		t.Fatalf("binary.New failed: %v", err)
	}
	visited := 0
	_, err = bv.ApplyObject(func(key string, child *binary.Value) (walk.Signal, error) {
		visited++
		return walk.Skip(), nil
	})
	if err != nil {
		t.Fatalf("ApplyObject failed: %v", err)
	}
	if visited != 1 {
		t.Fatalf("visited %d members, want 1", visited)
	}
}

func TestSkipKeywordsAndStrings(t *testing.T) {
	tape := encode(t, `[true,false,null,"hello"]`)
	bv, err := binary.New(tape, lazyjson.Options{})
	if err != nil {
		t.Fatalf("binary.New failed: %v", err)
	}
	n := 0
	_, err = bv.ApplyArray(func(index int, child *binary.Value) (walk.Signal, error) {
		n++
		return walk.Skip(), nil
	})
	if err != nil {
		t.Fatalf("ApplyArray failed: %v", err)
	}
	if n != 4 {
		t.Errorf("visited %d elements, want 4", n)
	}
}

func TestStringEscapesDecodedAtEncodeTime(t *testing.T) {
	tape := encode(t, `"a\nbé"`)
	bv, err := binary.New(tape, lazyjson.Options{})
	if err != nil {
		t.Fatalf("binary.New failed: %v", err)
	}
	s, err := bv.String()
	if err != nil {
		t.Fatalf("String() failed: %v", err)
	}
	if want := "a\nbé"; s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}
}

func TestInvalidBinaryTag(t *testing.T) {
	bad := []byte{0xf9}
	if _, err := binary.New(bad, lazyjson.Options{}); err == nil {
		t.Error("binary.New with an unrecognized tag should fail")
	}
}
