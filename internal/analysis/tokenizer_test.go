package analysis

import (
	"reflect"
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer(DefaultStopwords())
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"drops short and stopwords", "the cat sat on the mat", []string{"cat", "sat", "mat"}},
		{"keeps order and duplicates", "data beats data and more data", []string{"data", "beats", "data", "more", "data"}},
		{"drops long stopwords", "these would have been those", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizer_Terms(t *testing.T) {
	tok := NewTokenizer(DefaultStopwords())
	got := tok.Terms("the cat sat on these mats")
	want := []string{"the", "cat", "sat", "these", "mats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestTokenizer_runeLength(t *testing.T) {
	tok := NewTokenizer(nil)
	// "né" is two runes but three bytes
	got := tok.Tokenize("né été")
	want := []string{"été"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestWithMinTermLength(t *testing.T) {
	tok := NewTokenizer(nil, WithMinTermLength(5))
	got := tok.Tokenize("short longer lengthy")
	want := []string{"short", "longer", "lengthy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
	tok = NewTokenizer(nil, WithMinTermLength(0))
	if tok.minTermLength != DefaultMinTermLength {
		t.Errorf("non-positive length should be ignored, got %d", tok.minTermLength)
	}
}
