package core

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical unit vectors", []float64{1, 0, 0}, []float64{1, 0, 0}, 1.0},
		{"orthogonal vectors", []float64{1, 0, 0}, []float64{0, 1, 0}, 0.0},
		{"opposite vectors", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"mismatched lengths", []float64{1, 0}, []float64{1, 0, 0}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("CosineSimilarity(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmbedding(t *testing.T) {
	a := Article{Embedding: []float64{3, 4}}
	a.NormalizeEmbedding()

	norm := math.Sqrt(a.Embedding[0]*a.Embedding[0] + a.Embedding[1]*a.Embedding[1])
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("Expected unit norm after normalization, got %f", norm)
	}
	if math.Abs(a.Embedding[0]-0.6) > 1e-9 || math.Abs(a.Embedding[1]-0.8) > 1e-9 {
		t.Errorf("Unexpected normalized vector: %v", a.Embedding)
	}
}

func TestNormalizeEmbeddingZeroVector(t *testing.T) {
	a := Article{Embedding: []float64{0, 0, 0}}
	a.NormalizeEmbedding()

	for i, v := range a.Embedding {
		if v != 0 {
			t.Errorf("Zero vector should stay zero, index %d = %f", i, v)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.42, 0.42},
		{1.0, 1.0},
		{1.7, 1.0},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestContentPreview(t *testing.T) {
	a := Article{Content: "abcdefghij"}

	if got := a.ContentPreview(4); got != "abcd" {
		t.Errorf("ContentPreview(4) = %q, want %q", got, "abcd")
	}
	if got := a.ContentPreview(100); got != "abcdefghij" {
		t.Errorf("ContentPreview(100) = %q, want full content", got)
	}
}
