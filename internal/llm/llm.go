// Package llm wraps the Gemini API for the two capabilities the pipeline
// needs: semantic embeddings and optional story summaries.
package llm

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"google.golang.org/genai"

	"autonews/internal/core"
	"autonews/internal/logger"
)

const (
	// DefaultEmbeddingModel is the default model for generating embeddings.
	DefaultEmbeddingModel = "gemini-embedding-001"
	// DefaultEmbeddingDimensions is the output dimension for embeddings (Matryoshka).
	DefaultEmbeddingDimensions = int32(384)
	// DefaultSummaryModel is the default model for story summaries.
	DefaultSummaryModel = "gemini-flash-lite-latest"

	// embeddingTextLimit is a conservative character cap for embedding input.
	embeddingTextLimit = 8000
)

// Client talks to the Gemini API. It is safe for concurrent use.
type Client struct {
	gClient        *genai.Client
	embeddingModel string
	summaryModel   string
	dimensions     int32
}

// Option configures a Client.
type Option func(*Client)

// WithEmbeddingModel overrides the embedding model name.
func WithEmbeddingModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.embeddingModel = model
		}
	}
}

// WithSummaryModel overrides the summary model name.
func WithSummaryModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.summaryModel = model
		}
	}
}

// WithDimensions overrides the embedding output dimensionality.
func WithDimensions(dims int) Option {
	return func(c *Client) {
		if dims > 0 {
			c.dimensions = int32(dims)
		}
	}
}

// NewClient creates a Gemini client. The API key comes from the argument or,
// when empty, from the GEMINI_API_KEY environment variable.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY or embedding.api_key in the config file")
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		gClient:        gClient,
		embeddingModel: DefaultEmbeddingModel,
		summaryModel:   DefaultSummaryModel,
		dimensions:     DefaultEmbeddingDimensions,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateEmbedding generates a unit-normalized embedding for the given text.
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	if len(text) > embeddingTextLimit {
		text = text[:embeddingTextLimit]
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: text}},
		Role:  "user",
	}}

	dims := c.dimensions
	config := &genai.EmbedContentConfig{
		OutputDimensionality: &dims,
	}

	resp, err := c.gClient.Models.EmbedContent(ctx, c.embeddingModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, fmt.Errorf("no embedding values returned from API")
	}

	// Convert float32 to float64 and normalize so downstream cosine
	// similarity reduces to a dot product.
	values := resp.Embeddings[0].Values
	embedding := make([]float64, len(values))
	for i, val := range values {
		embedding[i] = float64(val)
	}
	normalize(embedding)

	return embedding, nil
}

// GenerateEmbeddings embeds each text in order. One request per text; a
// failure aborts the batch.
func (c *Client) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float64, error) {
	embeddings := make([][]float64, len(texts))
	for i, text := range texts {
		embedding, err := c.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed text %d of %d: %w", i+1, len(texts), err)
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}

// SummarizeStory generates a 2-3 sentence analyst summary for a story from
// its representative article and the other member titles.
func (c *Client) SummarizeStory(ctx context.Context, representative core.Article, memberTitles []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are an automotive industry analyst. Write a concise 2-3 sentence summary of this news story.\n\n")
	sb.WriteString("Headline: " + representative.Title + "\n\n")
	sb.WriteString("Article: " + representative.ContentPreview(core.MaxContentLength) + "\n")
	if len(memberTitles) > 0 {
		sb.WriteString("\nRelated coverage:\n")
		for _, title := range memberTitles {
			sb.WriteString("- " + title + "\n")
		}
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: sb.String()}},
		Role:  "user",
	}}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.summaryModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	logger.Debug("Generated story summary", "title", representative.Title)

	return text, nil
}

func normalize(v []float64) {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] /= norm
	}
}
