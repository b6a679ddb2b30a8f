package vector

import (
	"math"
	"reflect"
	"testing"
)

const eps = 1e-12

func TestVocabulary_insertionOrder(t *testing.T) {
	v := NewVocabulary([]string{"beta", "alpha", "beta"}, []string{"gamma", "alpha"})
	want := []string{"beta", "alpha", "gamma"}
	if !reflect.DeepEqual(v.Terms(), want) {
		t.Errorf("Terms() = %v, want %v", v.Terms(), want)
	}
	if v.Index("gamma") != 2 || v.Index("delta") != -1 {
		t.Errorf("Index: gamma=%d delta=%d", v.Index("gamma"), v.Index("delta"))
	}
}

func TestVocabulary_TermFrequencies(t *testing.T) {
	v := NewVocabulary([]string{"a", "b"}, []string{"c"})
	got := v.TermFrequencies([]string{"b", "a", "b", "zzz"})
	want := []int{1, 2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermFrequencies = %v, want %v", got, want)
	}
}

func TestInnerProductAndNorm(t *testing.T) {
	if got := InnerProduct([]int{1, 2, 3}, []int{4, 5, 6}); got != 32 {
		t.Errorf("InnerProduct = %v", got)
	}
	if got := InnerProduct([]int{1}, []int{1, 2}); got != 0 {
		t.Errorf("mismatched lengths should give 0, got %v", got)
	}
	if got := L2Norm([]int{3, 4}); got != 5 {
		t.Errorf("L2Norm = %v", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 []string
		want   float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", []string{"cat"}, nil, 0},
		{"identical", []string{"cat", "sat", "mat"}, []string{"mat", "cat", "sat"}, 1},
		{"disjoint", []string{"cat"}, []string{"dog"}, 0},
		// [1,1,0]·[1,0,1] = 1; |a|=|b|=sqrt2
		{"half overlap", []string{"cat", "sat"}, []string{"cat", "mat"}, 0.5},
		// term frequency, not presence: [2,0]·[1,1] = 2; 2/(2*sqrt2)
		{"frequency weighted", []string{"cat", "cat"}, []string{"cat", "dog"}, 1 / math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.t1, tt.t2)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("CosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_symmetric(t *testing.T) {
	a := []string{"data", "science", "data", "model"}
	b := []string{"model", "training", "data"}
	if CosineSimilarity(a, b) != CosineSimilarity(b, a) {
		t.Error("cosine similarity should be symmetric")
	}
}
