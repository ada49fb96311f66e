// Package categorization assigns relevant articles to one of eight fixed
// categories by cosine similarity against per-category prototype embeddings.
package categorization

import (
	"context"
	"fmt"
	"math"
	"strings"

	"autonews/internal/core"
	"autonews/internal/logger"
)

// explanationContentChars bounds how much of the article body is scanned when
// generating the "Matched on" explanation.
const explanationContentChars = 300

// Embedder generates unit-normalized embedding vectors for text. The pipeline
// supplies the same provider that produced the article embeddings, so
// prototypes and articles live in one vector space.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float64, error)
}

// Classifier scores article embeddings against the eight category prototypes.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	categories []Category
	prototypes [][]float64
}

// NewClassifier builds a classifier by embedding every keyword of every
// category, averaging per category and re-normalizing to unit length. An
// embedding failure aborts construction; a classifier with partial prototypes
// would silently misclassify everything.
func NewClassifier(ctx context.Context, embedder Embedder) (*Classifier, error) {
	prototypes := make([][]float64, len(Categories))

	for i, cat := range Categories {
		vectors, err := embedder.GenerateEmbeddings(ctx, cat.Keywords)
		if err != nil {
			return nil, fmt.Errorf("failed to embed keywords for category %q: %w", cat.Name, err)
		}
		if len(vectors) != len(cat.Keywords) {
			return nil, fmt.Errorf("embedding provider returned %d vectors for %d keywords of %q", len(vectors), len(cat.Keywords), cat.Name)
		}

		proto, err := meanVector(vectors)
		if err != nil {
			return nil, fmt.Errorf("failed to build prototype for category %q: %w", cat.Name, err)
		}
		prototypes[i] = proto
	}

	logger.Info("Built category prototypes", "categories", len(Categories))

	return &Classifier{categories: Categories, prototypes: prototypes}, nil
}

// meanVector averages the given vectors and re-normalizes to unit length.
func meanVector(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to average")
	}

	dim := len(vectors[0])
	mean := make([]float64, dim)
	for _, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("inconsistent vector dimensions: %d vs %d", len(v), dim)
		}
		for j, val := range v {
			mean[j] += val
		}
	}

	norm := 0.0
	for j := range mean {
		mean[j] /= float64(len(vectors))
		norm += mean[j] * mean[j]
	}
	if norm == 0 {
		return nil, fmt.Errorf("prototype averaged to the zero vector")
	}
	norm = math.Sqrt(norm)
	for j := range mean {
		mean[j] /= norm
	}

	return mean, nil
}

// Classify assigns a category, confidence and explanation to every article
// that carries an embedding. Articles without one, or whose embedding cannot
// be compared, are returned in skipped with an ErrorReason; a per-article
// failure never aborts the batch.
func (c *Classifier) Classify(articles []core.Article) (classified, skipped []core.Article) {
	for _, a := range articles {
		if err := c.classifyOne(&a); err != nil {
			a.ErrorReason = err.Error()
			logger.Warn("Skipping article in classification", "id", a.ID, "reason", a.ErrorReason)
			skipped = append(skipped, a)
			continue
		}
		classified = append(classified, a)
	}
	return classified, skipped
}

func (c *Classifier) classifyOne(a *core.Article) error {
	if !a.HasEmbedding() {
		return fmt.Errorf("article has no embedding")
	}
	if len(a.Embedding) != len(c.prototypes[0]) {
		return fmt.Errorf("embedding dimension %d does not match prototype dimension %d", len(a.Embedding), len(c.prototypes[0]))
	}

	// Embeddings and prototypes are unit length, so cosine similarity is a
	// plain dot product. Exact ties resolve to the lowest canonical index
	// because only a strictly greater similarity replaces the best.
	bestIdx := 0
	bestSim := dot(a.Embedding, c.prototypes[0])
	for i := 1; i < len(c.prototypes); i++ {
		if sim := dot(a.Embedding, c.prototypes[i]); sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}

	cat := c.categories[bestIdx]
	a.Category = cat.Name
	a.CategoryConfidence = core.Clamp01(bestSim)
	a.ClusterReason = explain(a, cat, a.CategoryConfidence)

	return nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// explain produces a human-readable reason for the category assignment: the
// first (up to three) literal keyword hits in the category's fixed keyword
// order, or a semantic-match fallback when nothing matches literally.
func explain(a *core.Article, cat Category, confidence float64) string {
	text := strings.ToLower(a.Title + " " + a.ContentPreview(explanationContentChars))

	var hits []string
	for _, kw := range cat.Keywords {
		if strings.Contains(text, kw) {
			hits = append(hits, kw)
			if len(hits) == 3 {
				break
			}
		}
	}

	if len(hits) == 0 {
		return fmt.Sprintf("Best semantic match to %s (score=%.2f)", cat.Name, confidence)
	}
	return "Matched on: " + strings.Join(hits, ", ")
}

// Gate removes articles whose category confidence falls below the configured
// minimum. Dropped articles leave the pipeline entirely and never reach the
// final report.
func Gate(articles []core.Article, minConfidence float64) (kept, dropped []core.Article) {
	for _, a := range articles {
		if a.CategoryConfidence >= minConfidence {
			kept = append(kept, a)
		} else {
			dropped = append(dropped, a)
		}
	}

	if len(dropped) > 0 {
		logger.Info("Confidence gate removed articles", "removed", len(dropped), "min_confidence", minConfidence)
	}

	return kept, dropped
}
