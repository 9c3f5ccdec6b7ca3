package rankcode

import (
	"errors"
	"slices"
	"testing"
)

func TestEncodeExample(t *testing.T) {
	tokens := Tokenize("the cat sat on the mat the cat ran")
	table := NewRankTable(Frequencies(tokens))

	code, err := table.Encode(tokens)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []int{1, 2, 6, 4, 1, 3, 1, 2, 5}
	if !slices.Equal(code, want) {
		t.Errorf("code = %v, want %v", code, want)
	}
}

func TestEncodeLengthPreserved(t *testing.T) {
	tests := []string{
		"",
		"x",
		"a a a a",
		"to be or not to be",
	}

	for _, text := range tests {
		tokens := Tokenize(text)
		table := NewRankTable(Frequencies(tokens))

		code, err := table.Encode(tokens)
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}

		if len(code) != len(tokens) {
			t.Errorf("len(code) = %d for %q, want %d", len(code), text, len(tokens))
		}
	}
}

func TestEncodeUnknownToken(t *testing.T) {
	table := NewRankTable(Frequencies([]string{"a", "b"}))

	_, err := table.Encode([]string{"a", "missing", "b"})
	if err == nil {
		t.Fatal("expected error for token not in table, got nil")
	}

	var ute *UnknownTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("error type = %T, want *UnknownTokenError", err)
	}
	if ute.Token != "missing" {
		t.Errorf("offending token = %q, want %q", ute.Token, "missing")
	}
}

func TestDecodeInvalidRank(t *testing.T) {
	table := NewRankTable(Frequencies([]string{"a", "b", "c"}))

	for _, bad := range []int{0, -5, 4} {
		_, err := table.Decode([]int{1, bad})
		if err == nil {
			t.Fatalf("Decode with rank %d: expected error, got nil", bad)
		}

		var ire *InvalidRankError
		if !errors.As(err, &ire) {
			t.Fatalf("error type = %T, want *InvalidRankError", err)
		}
		if ire.Rank != bad || ire.Size != 3 {
			t.Errorf("error = rank %d size %d, want rank %d size 3", ire.Rank, ire.Size, bad)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	table := NewRankTable(Frequencies(nil))

	tokens, err := table.Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("tokens = %v, want empty", tokens)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"example", "the cat sat on the mat the cat ran"},
		{"single token", "x"},
		{"all distinct", "one two three four"},
		{"all same", "go go go go"},
		{"messy whitespace", "  a\t\tb\n\nc a  b\ta "},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, code, err := Encode(tt.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			decoded, err := table.Decode(code)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if !slices.Equal(decoded, Tokenize(tt.text)) {
				t.Errorf("Decode(Encode(text)) = %v, want %v", decoded, Tokenize(tt.text))
			}
		})
	}
}
