package pipeline

import (
	"context"

	"autonews/internal/core"
)

// ArticleSource loads the input corpus.
type ArticleSource interface {
	LoadDir(dir string) ([]core.Article, error)
}

// EmbeddingGenerator produces unit-normalized embedding vectors. Category
// prototypes and article embeddings must come from the same generator so
// they share a vector space.
type EmbeddingGenerator interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float64, error)
}
