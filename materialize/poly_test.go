package materialize_test

import (
	"testing"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/materialize"
	"github.com/lazyjson/lazyjson/walk"
)

func TestDiscriminate(t *testing.T) {
	v := mustLazy(t, `{"type":"circle","radius":5}`)
	got, err := materialize.Discriminate(v, "type")
	if err != nil {
		t.Fatalf("Discriminate failed: %v", err)
	}
	if got != "circle" {
		t.Errorf("Discriminate = %q, want circle", got)
	}
}

func TestMatchEnumCaseInsensitive(t *testing.T) {
	variants := []string{"Red", "Green", "Blue"}
	got, ok := materialize.MatchEnum("GREEN", variants)
	if !ok || got != "Green" {
		t.Errorf("MatchEnum(GREEN) = (%q, %v), want (Green, true)", got, ok)
	}
	if _, ok := materialize.MatchEnum("purple", variants); ok {
		t.Error("MatchEnum(purple) should not match")
	}
}

func TestUnionDispatchByKind(t *testing.T) {
	variants := []materialize.UnionVariant{
		{
			Accepts: func(k lazyjson.Kind) bool { return k == lazyjson.String },
			Build: func(view walk.View) (any, error) {
				return "string-arm", nil
			},
		},
		{
			Accepts: func(k lazyjson.Kind) bool { return k.IsNumeric() },
			Build: func(view walk.View) (any, error) {
				return "number-arm", nil
			},
		},
		{
			Accepts: func(k lazyjson.Kind) bool { return k == lazyjson.Null },
			Build: func(view walk.View) (any, error) {
				return "null-arm", nil
			},
		},
	}

	tests := []struct {
		input string
		want  string
	}{
		{`"x"`, "string-arm"},
		{`5`, "number-arm"},
		{`null`, "null-arm"},
	}
	for _, test := range tests {
		v := mustLazy(t, test.input)
		got, err := materialize.Union(v, variants)
		if err != nil {
			t.Fatalf("Union(%q) failed: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("Union(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestUnionNoMatchingVariant(t *testing.T) {
	v := mustLazy(t, `true`)
	variants := []materialize.UnionVariant{
		{Accepts: func(k lazyjson.Kind) bool { return k == lazyjson.String }},
	}
	if _, err := materialize.Union(v, variants); err == nil {
		t.Error("Union with no matching variant should fail")
	}
}
