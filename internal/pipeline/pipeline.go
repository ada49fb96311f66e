// Package pipeline orchestrates the full run: load, relevance filter, embed,
// classify, cluster per category, summarize, assemble the report. Stages run
// strictly in order; only per-category clustering fans out.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"autonews/internal/categorization"
	"autonews/internal/clustering"
	"autonews/internal/config"
	"autonews/internal/core"
	"autonews/internal/logger"
	"autonews/internal/relevance"
	"autonews/internal/report"
	"autonews/internal/summarize"
)

// Pipeline wires the stages together. Collaborators are injected so tests can
// run the whole flow without network access.
type Pipeline struct {
	cfg        *config.Config
	source     ArticleSource
	embedder   EmbeddingGenerator
	summarizer summarize.Summarizer
}

// New creates a pipeline. A nil summarizer disables story summaries.
func New(cfg *config.Config, source ArticleSource, embedder EmbeddingGenerator, summarizer summarize.Summarizer) *Pipeline {
	if summarizer == nil {
		summarizer = summarize.Disabled()
	}
	return &Pipeline{cfg: cfg, source: source, embedder: embedder, summarizer: summarizer}
}

// Run executes the pipeline and returns the assembled report. The report is
// not written to disk; that is the caller's decision.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	articles, err := p.source.LoadDir(p.cfg.App.InputDir)
	if err != nil {
		return nil, err
	}

	scorer := relevance.NewScorer()
	relevant, rejected := scorer.Partition(articles, p.cfg.Relevance.Threshold)
	logger.Info("Relevance filter applied",
		"input", len(articles), "relevant", len(relevant), "rejected", len(rejected),
		"threshold", p.cfg.Relevance.Threshold)

	if len(relevant) == 0 {
		logger.Warn("No automotive-relevant articles; producing an empty report")
		return report.Assemble(len(articles), nil, nil, p.cfg.Clustering.DuplicateThreshold), nil
	}

	embedded, err := p.embed(ctx, relevant)
	if err != nil {
		return nil, err
	}

	classifier, err := categorization.NewClassifier(ctx, p.embedder)
	if err != nil {
		return nil, err
	}

	classified, skipped := classifier.Classify(embedded)
	kept, dropped := categorization.Gate(classified, p.cfg.Classify.MinConfidence)
	logger.Info("Classification complete",
		"classified", len(classified), "skipped", len(skipped),
		"kept", len(kept), "low_confidence", len(dropped))

	clustered := p.clusterByCategory(kept)
	assignStoryIDs(clustered)

	if p.cfg.Summarize.Enabled {
		total := 0
		for _, stories := range clustered {
			total += summarize.Stories(ctx, p.summarizer, stories)
		}
		logger.Info("Summarization complete", "stories", total)
	}

	return report.Assemble(len(articles), relevant, clustered, p.cfg.Clustering.DuplicateThreshold), nil
}

// embed fills in missing article embeddings and normalizes every vector. An
// article whose embedding fails is excluded with an ErrorReason; the run
// aborts only when the failure fraction exceeds the configured ceiling.
func (p *Pipeline) embed(ctx context.Context, articles []core.Article) ([]core.Article, error) {
	embedded := make([]core.Article, 0, len(articles))
	failures := 0

	for _, a := range articles {
		if !a.HasEmbedding() {
			vec, err := p.embedder.GenerateEmbedding(ctx, a.Title+"\n\n"+a.Content)
			if err != nil {
				failures++
				a.ErrorReason = fmt.Sprintf("embedding failed: %v", err)
				logger.Warn("Skipping article without embedding", "id", a.ID, "error", err.Error())
				continue
			}
			a.Embedding = vec
		}
		a.NormalizeEmbedding()
		embedded = append(embedded, a)
	}

	if frac := float64(failures) / float64(len(articles)); frac > p.cfg.Classify.MaxMissingEmbeddings {
		return nil, fmt.Errorf("embedding failed for %d of %d articles (%.0f%%), above the %.0f%% ceiling",
			failures, len(articles), frac*100, p.cfg.Classify.MaxMissingEmbeddings*100)
	}

	return embedded, nil
}

// clusterByCategory runs the story clusterer for each category concurrently,
// bounded by MaxParallelCategories. Articles keep their classification order
// within a category, so clustering input is deterministic.
func (p *Pipeline) clusterByCategory(articles []core.Article) map[string][]clustering.Story {
	byCategory := make(map[string][]core.Article)
	for _, a := range articles {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	clusterer := clustering.NewClusterer(
		p.cfg.Clustering.DuplicateThreshold,
		p.cfg.Clustering.BrandOverrideSimilarity,
		p.cfg.Clustering.StrayEvictionThreshold,
	)

	clustered := make(map[string][]clustering.Story, len(byCategory))
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, p.cfg.Clustering.MaxParallelCategories)
	)
	for name, members := range byCategory {
		wg.Add(1)
		go func(name string, members []core.Article) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			stories := clusterer.Cluster(name, members)

			mu.Lock()
			clustered[name] = stories
			mu.Unlock()
		}(name, members)
	}
	wg.Wait()

	return clustered
}

// assignStoryIDs stamps sc_%06d identifiers across all stories, walking
// categories in canonical order and stories in ascending first-member order.
// Clustering itself is parallel, so IDs are assigned here to stay stable.
func assignStoryIDs(clustered map[string][]clustering.Story) {
	next := 1
	for _, cat := range categorization.Categories {
		stories := clustered[cat.Name]
		for i := range stories {
			id := fmt.Sprintf("sc_%06d", next)
			next++
			for j := range stories[i].Members {
				stories[i].Members[j].SubClusterID = id
			}
		}
	}
}
