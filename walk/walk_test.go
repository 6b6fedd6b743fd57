package walk_test

import (
	"testing"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/lazy"
	"github.com/lazyjson/lazyjson/walk"
)

func mustValue(t *testing.T, input string) *lazy.Value {
	t.Helper()
	v, err := lazy.New([]byte(input), lazyjson.Options{})
	if err != nil {
		t.Fatalf("lazy.New(%q) failed: %v", input, err)
	}
	return v
}

func TestGetByKeyAndIndex(t *testing.T) {
	v := mustValue(t, `{"a":1,"b":[10,20,30]}`)

	bv, err := walk.Get(v, "b")
	if err != nil {
		t.Fatalf("Get(b) failed: %v", err)
	}
	elem, err := walk.Get(bv, -1)
	if err != nil {
		t.Fatalf("Get(-1) failed: %v", err)
	}
	n, err := elem.(*lazy.Value).Number()
	if err != nil {
		t.Fatalf("Number failed: %v", err)
	}
	if n.Int64() != 30 {
		t.Errorf("b[-1] = %d, want 30", n.Int64())
	}
}

func TestPath(t *testing.T) {
	v := mustValue(t, `{"x":{"y":[{"z":"found"}]}}`)
	leaf, err := walk.Path(v, "x", "y", 0, "z")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	s, err := leaf.(*lazy.Value).DecodedString()
	if err != nil {
		t.Fatalf("DecodedString failed: %v", err)
	}
	if s != "found" {
		t.Errorf("Path result = %q, want %q", s, "found")
	}
}

func TestCountAndCollect(t *testing.T) {
	v := mustValue(t, `[1,2,3,4,5]`)
	n, err := walk.Count(v)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}

	keys, children, err := walk.Collect(v)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(keys) != 5 || len(children) != 5 {
		t.Fatalf("Collect returned %d keys, %d children, want 5 each", len(keys), len(children))
	}
}

func TestFind(t *testing.T) {
	v := mustValue(t, `[{"id":1},{"id":2},{"id":3}]`)
	key, child, ok, err := walk.Find(v, func(key any, c walk.View) (bool, error) {
		target, err := walk.Get(c, "id")
		if err != nil {
			return false, err
		}
		n, err := target.(*lazy.Value).Number()
		if err != nil {
			return false, err
		}
		return n.Int64() == 2, nil
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("Find did not locate a match")
	}
	if key.(int) != 1 {
		t.Errorf("Find key = %v, want 1", key)
	}
	_ = child
}

func TestEachShortCircuit(t *testing.T) {
	v := mustValue(t, `[1,2,3,4,5]`)
	var visited int
	err := walk.Each(v, func(key any, child walk.View) (bool, error) {
		visited++
		return key.(int) < 2, nil
	})
	if err != nil {
		t.Fatalf("Each failed: %v", err)
	}
	if visited != 3 {
		t.Errorf("visited = %d, want 3 (indices 0,1,2 then stop)", visited)
	}
}
