package escape

import (
	"testing"

	"go4.org/mem"
)

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"a\nb\tc",
		`a"b\c`,
		"emoji \U0001F389 text",
		"control\x01char",
	}
	for _, s := range tests {
		quoted := Quote(mem.S(s))
		unquoted, err := Unquote(mem.B(quoted))
		if err != nil {
			t.Fatalf("Unquote(Quote(%q)) failed: %v", s, err)
		}
		if string(unquoted) != s {
			t.Errorf("round trip %q -> %q -> %q", s, quoted, unquoted)
		}
	}
}

func TestUnquoteSurrogatePair(t *testing.T) {
	// U+1F389 PARTY POPPER, encoded as the UTF-16 surrogate pair D83C DF89.
	input := "\\ud83c\\udf89"
	got, err := Unquote(mem.S(input))
	if err != nil {
		t.Fatalf("Unquote(%q) failed: %v", input, err)
	}
	if want := "\U0001F389"; string(got) != want {
		t.Errorf("Unquote(%q) = %q, want %q", input, got, want)
	}
}

func TestUnquoteLoneSurrogate(t *testing.T) {
	input := "\\ud83c"
	got, err := Unquote(mem.S(input))
	if err != nil {
		t.Fatalf("Unquote(%q) failed: %v", input, err)
	}
	if len(got) == 0 {
		t.Error("Unquote of a lone surrogate should still produce replacement output")
	}
}

func TestUnquoteStandardEscapes(t *testing.T) {
	input := `\"\\\/\b\f\n\r\t`
	got, err := Unquote(mem.S(input))
	if err != nil {
		t.Fatalf("Unquote(%q) failed: %v", input, err)
	}
	if want := "\"\\/\b\f\n\r\t"; string(got) != want {
		t.Errorf("Unquote standard escapes = %q, want %q", got, want)
	}
}
