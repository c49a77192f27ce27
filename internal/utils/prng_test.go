package utils

import "testing"

func TestWeightedIndex(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		draw    float64
		want    int
	}{
		{"empty", nil, 0.5, -1},
		{"first bucket", []float64{1, 2, 3}, 0, 0},
		{"second bucket", []float64{1, 2, 3}, 0.2, 1},
		{"last bucket", []float64{1, 2, 3}, 0.99, 2},
		{"draw of one", []float64{1, 2, 3}, 1, 2},
		{"zero weights skipped", []float64{0, 5, 0}, 0.99, 1},
		{"all zero", []float64{0, 0}, 0.7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedIndex(tt.weights, tt.draw); got != tt.want {
				t.Errorf("WeightedIndex(%v, %v) = %d, want %d", tt.weights, tt.draw, got, tt.want)
			}
		})
	}
}

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	weights := []float64{1, 2, 3, 4}
	for i := 0; i < 20; i++ {
		if a.ChooseWeighted(weights) != b.ChooseWeighted(weights) {
			t.Fatalf("weighted choices diverged at %d", i)
		}
	}
}
