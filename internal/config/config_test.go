package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Default configuration should validate, got: %v", err)
	}
}

func TestValidateRejectsOutOfRangeThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"relevance threshold above 1", func(c *Config) { c.Relevance.Threshold = 1.5 }, "relevance.threshold"},
		{"relevance threshold negative", func(c *Config) { c.Relevance.Threshold = -0.1 }, "relevance.threshold"},
		{"min confidence above 1", func(c *Config) { c.Classify.MinConfidence = 2.0 }, "classify.min_confidence"},
		{"missing embeddings negative", func(c *Config) { c.Classify.MaxMissingEmbeddings = -0.5 }, "classify.max_missing_embeddings"},
		{"duplicate threshold above 1", func(c *Config) { c.Clustering.DuplicateThreshold = 1.01 }, "clustering.duplicate_threshold"},
		{"brand override negative", func(c *Config) { c.Clustering.BrandOverrideSimilarity = -1 }, "clustering.brand_override_similarity"},
		{"stray eviction above 1", func(c *Config) { c.Clustering.StrayEvictionThreshold = 78.0 }, "clustering.stray_eviction_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Error %q should name the offending key %q", err.Error(), tt.key)
			}
		})
	}
}

func TestValidateRejectsBadCounts(t *testing.T) {
	cfg := Default()
	cfg.Clustering.MaxParallelCategories = 0
	if err := Validate(cfg); err == nil {
		t.Error("Expected error for zero max_parallel_categories")
	}

	cfg = Default()
	cfg.Embedding.Dimensions = 0
	if err := Validate(cfg); err == nil {
		t.Error("Expected error for zero embedding dimensions")
	}
}

func TestBoundaryThresholdsAreValid(t *testing.T) {
	cfg := Default()
	cfg.Relevance.Threshold = 0.0
	cfg.Classify.MinConfidence = 1.0

	if err := Validate(cfg); err != nil {
		t.Errorf("Boundary values 0 and 1 should be accepted, got: %v", err)
	}
}
