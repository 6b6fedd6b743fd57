package materialize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/lazy"
	"github.com/lazyjson/lazyjson/materialize"
	"github.com/lazyjson/lazyjson/value"
)

func mustLazy(t *testing.T, input string) *lazy.Value {
	t.Helper()
	v, err := lazy.New([]byte(input), lazyjson.Options{})
	if err != nil {
		t.Fatalf("lazy.New(%q) failed: %v", input, err)
	}
	return v
}

func TestGenericObjectAndArray(t *testing.T) {
	v := mustLazy(t, `{"a":1,"b":[2,3],"c":"x","d":true,"e":null}`)
	got, err := materialize.Generic(v, lazyjson.Options{}, lazyjson.Types{})
	if err != nil {
		t.Fatalf("Generic failed: %v", err)
	}
	m, ok := got.(value.Map)
	if !ok {
		t.Fatalf("Generic result = %T, want value.Map", got)
	}
	if m["a"] != int64(1) {
		t.Errorf("a = %v, want int64(1)", m["a"])
	}
	seq, ok := m["b"].(value.Sequence)
	if !ok || len(seq) != 2 {
		t.Errorf("b = %v, want a 2-element Sequence", m["b"])
	}
	if m["c"] != "x" {
		t.Errorf("c = %v, want x", m["c"])
	}
	if m["d"] != true {
		t.Errorf("d = %v, want true", m["d"])
	}
	if _, ok := m["e"].(value.Null); !ok {
		t.Errorf("e = %v (%T), want value.Null", m["e"], m["e"])
	}
}

func TestGenericDuplicateKeyLastWriteWins(t *testing.T) {
	v := mustLazy(t, `{"a":1,"a":2}`)
	got, err := materialize.Generic(v, lazyjson.Options{}, lazyjson.Types{})
	if err != nil {
		t.Fatalf("Generic failed: %v", err)
	}
	want := value.Map{"a": int64(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generic result mismatch (-want +got):\n%s", diff)
	}
}

func TestGenericCustomTypesHook(t *testing.T) {
	var sawString bool
	types := lazyjson.Types{
		NewString: func(s string) any {
			sawString = true
			return "!" + s
		},
	}
	v := mustLazy(t, `"hi"`)
	got, err := materialize.Generic(v, lazyjson.Options{}, types)
	if err != nil {
		t.Fatalf("Generic failed: %v", err)
	}
	if !sawString || got != "!hi" {
		t.Errorf("Generic with NewString hook = %v, sawString = %v", got, sawString)
	}
}
