// Package report assembles the final results document and writes it to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"autonews/internal/clustering"
	"autonews/internal/core"
	"autonews/internal/logger"
)

// articlePreviewChars is the body excerpt length carried per article, and the
// summary fallback length when no generated summary exists.
const articlePreviewChars = 200

// Report is the top-level results document.
type Report struct {
	RunID      string                     `json:"run_id"`
	RunAt      string                     `json:"run_at"`
	Stats      Stats                      `json:"stats"`
	Categories map[string]*CategoryReport `json:"categories"`
}

// Stats summarizes the run.
type Stats struct {
	TotalInput          int     `json:"total_input"`
	TotalAutomobile     int     `json:"total_automobile"`
	UniqueSources       int     `json:"unique_sources"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

// CategoryReport holds the stories of one category.
type CategoryReport struct {
	TotalArticles int           `json:"total_articles"`
	UniqueStories int           `json:"unique_stories"`
	Stories       []StoryReport `json:"stories"`
}

// StoryReport is one story: a representative plus its duplicates.
type StoryReport struct {
	SubClusterID          string          `json:"sub_cluster_id"`
	StoryCount            int             `json:"story_count"`
	Summary               string          `json:"summary"`
	RepresentativeTitle   string          `json:"representative_title"`
	Sources               []string        `json:"sources"`
	ClusterCoherenceScore float64         `json:"cluster_coherence_score"`
	Articles              []ArticleReport `json:"articles"`
}

// ArticleReport is the per-article detail embedded in a story.
type ArticleReport struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	Source                string   `json:"source"`
	PublishedAt           string   `json:"published_at"`
	IsRepresentative      bool     `json:"is_representative"`
	ContentPreview        string   `json:"content_preview"`
	AutoScore             float64  `json:"auto_score"`
	MatchedKeywords       []string `json:"auto_keywords,omitempty"`
	CategoryConfidence    float64  `json:"category_confidence"`
	URL                   string   `json:"url"`
	ClusterReason         string   `json:"cluster_reason"`
	DuplicateReason       string   `json:"duplicate_reason"`
	ClusterCoherenceScore float64  `json:"cluster_coherence_score"`
}

// Assemble builds the results document. It is a pure function of its inputs
// apart from the run ID and timestamp: assembling the same inputs twice
// yields the same categories, stories and stats. Categories with no stories
// are omitted.
func Assemble(totalInput int, relevant []core.Article, clustered map[string][]clustering.Story, similarityThreshold float64) *Report {
	categories := make(map[string]*CategoryReport, len(clustered))
	for name, stories := range clustered {
		if len(stories) == 0 {
			continue
		}
		categories[name] = assembleCategory(stories)
	}

	return &Report{
		RunID: uuid.NewString(),
		RunAt: time.Now().UTC().Format(time.RFC3339),
		Stats: Stats{
			TotalInput:          totalInput,
			TotalAutomobile:     len(relevant),
			UniqueSources:       countUniqueSources(relevant),
			SimilarityThreshold: similarityThreshold,
		},
		Categories: categories,
	}
}

func assembleCategory(stories []clustering.Story) *CategoryReport {
	out := &CategoryReport{UniqueStories: len(stories)}

	for i := range stories {
		story := assembleStory(&stories[i])
		out.TotalArticles += story.StoryCount
		out.Stories = append(out.Stories, story)
	}

	// Most covered stories first; the story ID breaks ties so output order
	// is stable across runs.
	sort.Slice(out.Stories, func(a, b int) bool {
		if out.Stories[a].StoryCount != out.Stories[b].StoryCount {
			return out.Stories[a].StoryCount > out.Stories[b].StoryCount
		}
		return out.Stories[a].SubClusterID < out.Stories[b].SubClusterID
	})

	return out
}

func assembleStory(story *clustering.Story) StoryReport {
	rep := story.Representative()

	summary := rep.Summary
	if summary == "" {
		summary = rep.ContentPreview(articlePreviewChars) + "..."
	}

	sr := StoryReport{
		SubClusterID:          rep.SubClusterID,
		StoryCount:            len(story.Members),
		Summary:               summary,
		RepresentativeTitle:   rep.Title,
		Sources:               distinctSources(story.Members),
		ClusterCoherenceScore: story.Coherence,
		Articles:              make([]ArticleReport, 0, len(story.Members)),
	}

	for i := range story.Members {
		a := &story.Members[i]
		sr.Articles = append(sr.Articles, ArticleReport{
			ID:                    a.ID,
			Title:                 a.Title,
			Source:                a.Source,
			PublishedAt:           a.PublishedAt,
			IsRepresentative:      a.IsRepresentative,
			ContentPreview:        a.ContentPreview(articlePreviewChars),
			AutoScore:             a.AutoScore,
			MatchedKeywords:       a.MatchedKeywords,
			CategoryConfidence:    a.CategoryConfidence,
			URL:                   a.URL,
			ClusterReason:         a.ClusterReason,
			DuplicateReason:       a.DuplicateReason,
			ClusterCoherenceScore: a.ClusterCoherenceScore,
		})
	}

	return sr
}

func distinctSources(members []core.Article) []string {
	seen := make(map[string]struct{}, len(members))
	var sources []string
	for _, m := range members {
		if _, ok := seen[m.Source]; ok {
			continue
		}
		seen[m.Source] = struct{}{}
		sources = append(sources, m.Source)
	}
	sort.Strings(sources)
	return sources
}

func countUniqueSources(articles []core.Article) int {
	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		seen[a.Source] = struct{}{}
	}
	return len(seen)
}

// WriteJSON writes the report as indented JSON, creating parent directories
// as needed.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	logger.Info("Report written", "path", path, "bytes", len(data))

	return nil
}
