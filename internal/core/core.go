package core

import "math"

// Article represents a pre-extracted news article flowing through the pipeline.
// Identity fields are immutable once loaded; decision fields are populated by
// the pipeline stages and carry safe zero values so reports from older runs
// unmarshal cleanly.
type Article struct {
	ID          string `json:"id"`           // Unique identifier (synthesized when the source omits one)
	Title       string `json:"title"`        // Article headline
	Content     string `json:"content"`      // Extracted body text, capped at MaxContentLength
	Source      string `json:"source"`       // Publisher / outlet name
	URL         string `json:"url"`          // Original article URL
	PublishedAt string `json:"published_at"` // ISO-8601 timestamp (synthesized when absent)

	// Embedding is a unit-normalized semantic vector supplied by the embedding
	// collaborator. Unit length lets cosine similarity reduce to a dot product.
	Embedding []float64 `json:"embedding,omitempty"`

	// Decision fields, populated stage by stage.
	AutoScore             float64  `json:"auto_score"`                        // Relevance score in [0,1]
	MatchedKeywords       []string `json:"auto_keywords,omitempty"`           // Tier-tagged keyword hits, at most 5
	Category              string   `json:"category,omitempty"`                // Assigned category name
	CategoryConfidence    float64  `json:"category_confidence"`               // Winning prototype similarity in [0,1]
	ClusterReason         string   `json:"cluster_reason,omitempty"`          // Human-readable classification explanation
	SubClusterID          string   `json:"sub_cluster_id,omitempty"`          // Story the article belongs to
	IsRepresentative      bool     `json:"is_representative"`                 // Exactly one true per story
	DuplicateReason       string   `json:"duplicate_reason,omitempty"`        // Set on non-representative story members
	ClusterCoherenceScore float64  `json:"cluster_coherence_score,omitempty"` // Mean pairwise similarity of the story
	Summary               string   `json:"summary,omitempty"`                 // Optional story summary
	ErrorReason           string   `json:"error_reason,omitempty"`            // Why the article was excluded, if it was
}

// MaxContentLength is the cap applied to article body text on intake.
const MaxContentLength = 5000

// ContentPreview returns the first n characters of the article body.
func (a *Article) ContentPreview(n int) string {
	if len(a.Content) <= n {
		return a.Content
	}
	return a.Content[:n]
}

// HasEmbedding reports whether the article carries a usable embedding vector.
func (a *Article) HasEmbedding() bool {
	return len(a.Embedding) > 0
}

// NormalizeEmbedding rescales the article's embedding to unit length in place.
// A zero vector is left untouched.
func (a *Article) NormalizeEmbedding() {
	norm := 0.0
	for _, v := range a.Embedding {
		norm += v * v
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range a.Embedding {
		a.Embedding[i] /= norm
	}
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for mismatched lengths or zero vectors.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Clamp01 clamps v into the [0,1] interval. Score, confidence and coherence
// values are always clamped; configuration thresholds never are.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
