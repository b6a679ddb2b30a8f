package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 42.5, 42.5},
		{"below", -3, 0},
		{"above", 100.0000001, 100},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, 0, 100); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
		{0, 0},
		{12.5, 12.5},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
