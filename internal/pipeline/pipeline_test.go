package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"autonews/internal/config"
	"autonews/internal/core"
	"autonews/internal/report"
)

type stubSource struct {
	articles []core.Article
	err      error
}

func (s *stubSource) LoadDir(dir string) ([]core.Article, error) {
	return s.articles, s.err
}

// stubEmbedder serves an 8-dimensional space where category prototypes are
// the unit axes: batch call i (keyword embedding for category i) returns e_i.
// Per-article embeddings come from the vectors map, keyed by article title.
type stubEmbedder struct {
	batchCalls int
	vectors    map[string][]float64
	failFor    map[string]bool
}

func axis(i int, scale float64) []float64 {
	v := make([]float64, 8)
	v[i] = scale
	return v
}

// tilted returns a unit vector mostly along main with a small component on
// other; cosine to e_main is cos(degrees).
func tilted(main, other int, degrees float64) []float64 {
	rad := degrees * math.Pi / 180
	v := make([]float64, 8)
	v[main] = math.Cos(rad)
	v[other] = math.Sin(rad)
	return v
}

func (e *stubEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = axis(e.batchCalls, 1)
	}
	e.batchCalls++
	return out, nil
}

func (e *stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	for title, v := range e.vectors {
		if strings.HasPrefix(text, title) {
			if e.failFor[title] {
				return nil, fmt.Errorf("embedding backend unavailable")
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("no stub vector for %q", text)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.App.InputDir = "unused"
	return cfg
}

func findStory(r *report.Report, category, repTitle string) *report.StoryReport {
	cat := r.Categories[category]
	if cat == nil {
		return nil
	}
	for i := range cat.Stories {
		if cat.Stories[i].RepresentativeTitle == repTitle {
			return &cat.Stories[i]
		}
	}
	return nil
}

func TestPipelineEndToEnd(t *testing.T) {
	articles := []core.Article{
		{ID: "market", Title: "Auto index climbs on demand", Content: "The automobile sector rallied today on strong demand data and more follows here."},
		{ID: "tesla1", Title: "Tesla cuts prices across lineup", Content: strings.Repeat("automobile price cut detail ", 20)},
		{ID: "tesla2", Title: "Tesla price cut confirmed by dealers", Content: "Short automobile note."},
		{ID: "battery", Title: "Solid state battery breakthrough", Content: "An electric vehicle battery lab result."},
		{ID: "offtopic", Title: "Local bakery wins award", Content: "Nothing to see here for the sector."},
	}

	embedder := &stubEmbedder{vectors: map[string][]float64{
		"Auto index climbs on demand":          axis(0, 1),
		"Tesla cuts prices across lineup":      axis(2, 1),
		"Tesla price cut confirmed by dealers": tilted(2, 6, 20), // cos 20 deg to its twin
		"Solid state battery breakthrough":     axis(3, 5),       // scaled; pipeline must normalize
	}}

	p := New(testConfig(), &stubSource{articles: articles}, embedder, nil)
	r, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if r.Stats.TotalInput != 5 || r.Stats.TotalAutomobile != 4 {
		t.Errorf("stats = %+v, want 5 input and 4 relevant", r.Stats)
	}

	tesla := findStory(r, "Competitor Activity", "Tesla cuts prices across lineup")
	if tesla == nil {
		t.Fatal("merged Tesla story missing from Competitor Activity")
	}
	if tesla.StoryCount != 2 {
		t.Errorf("Tesla story count = %d, want 2", tesla.StoryCount)
	}

	market := findStory(r, "Industry & Market Updates", "Auto index climbs on demand")
	battery := findStory(r, "Technology & Innovation", "Solid state battery breakthrough")
	if market == nil || battery == nil {
		t.Fatal("singleton stories missing from their categories")
	}

	// IDs follow canonical category order: Industry first, then Competitor
	// Activity, then Technology.
	if market.SubClusterID != "sc_000001" || tesla.SubClusterID != "sc_000002" || battery.SubClusterID != "sc_000003" {
		t.Errorf("story IDs = %q, %q, %q; want sc_000001, sc_000002, sc_000003",
			market.SubClusterID, tesla.SubClusterID, battery.SubClusterID)
	}

	// The scaled input vector must classify cleanly after normalization.
	if got := battery.Articles[0].CategoryConfidence; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("battery confidence = %v, want 1.0 from a normalized vector", got)
	}

	for _, cat := range r.Categories {
		for _, s := range cat.Stories {
			for _, a := range s.Articles {
				if a.ID == "offtopic" {
					t.Error("rejected article leaked into the report")
				}
			}
		}
	}
}

func TestPipelineRunTwiceIsDeterministic(t *testing.T) {
	articles := []core.Article{
		{ID: "a", Title: "Tesla cuts prices across lineup", Content: "automobile one"},
		{ID: "b", Title: "Solid state battery breakthrough", Content: "electric vehicle two"},
	}
	newEmbedder := func() *stubEmbedder {
		return &stubEmbedder{vectors: map[string][]float64{
			"Tesla cuts prices across lineup":  axis(2, 1),
			"Solid state battery breakthrough": axis(3, 1),
		}}
	}

	first, err := New(testConfig(), &stubSource{articles: articles}, newEmbedder(), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := New(testConfig(), &stubSource{articles: articles}, newEmbedder(), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for name, cat := range first.Categories {
		other := second.Categories[name]
		if other == nil || len(other.Stories) != len(cat.Stories) {
			t.Fatalf("category %q differs between runs", name)
		}
		for i := range cat.Stories {
			if cat.Stories[i].SubClusterID != other.Stories[i].SubClusterID {
				t.Errorf("story IDs differ between runs: %q vs %q",
					cat.Stories[i].SubClusterID, other.Stories[i].SubClusterID)
			}
		}
	}
}

func TestPipelineEmbeddingFailuresWithinCeiling(t *testing.T) {
	articles := []core.Article{
		{ID: "a1", Title: "Auto index climbs on demand", Content: "automobile one"},
		{ID: "a2", Title: "Tesla cuts prices across lineup", Content: "automobile two"},
		{ID: "a3", Title: "Solid state battery breakthrough", Content: "electric vehicle three"},
		{ID: "a4", Title: "Chip supply easing for carmakers", Content: "automobile four"},
		{ID: "a5", Title: "Plant expansion announced", Content: "automobile five"},
	}
	embedder := &stubEmbedder{
		vectors: map[string][]float64{
			"Auto index climbs on demand":      axis(0, 1),
			"Tesla cuts prices across lineup":  axis(2, 1),
			"Solid state battery breakthrough": axis(3, 1),
			"Chip supply easing for carmakers": axis(5, 1),
			"Plant expansion announced":        axis(4, 1),
		},
		failFor: map[string]bool{"Plant expansion announced": true}, // 1 of 5 = exactly the 0.2 ceiling
	}

	r, err := New(testConfig(), &stubSource{articles: articles}, embedder, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed despite failures within the ceiling: %v", err)
	}

	if _, ok := r.Categories["Manufacturing & Operations"]; ok {
		t.Error("article with a failed embedding must not reach the report")
	}
	if r.Stats.TotalAutomobile != 5 {
		t.Errorf("total_automobile = %d, want 5 (relevance count, not embedding count)", r.Stats.TotalAutomobile)
	}
}

func TestPipelineAbortsWhenTooManyEmbeddingsFail(t *testing.T) {
	articles := []core.Article{
		{ID: "a1", Title: "Auto index climbs on demand", Content: "automobile one"},
		{ID: "a2", Title: "Tesla cuts prices across lineup", Content: "automobile two"},
	}
	embedder := &stubEmbedder{
		vectors: map[string][]float64{
			"Auto index climbs on demand":     axis(0, 1),
			"Tesla cuts prices across lineup": axis(2, 1),
		},
		failFor: map[string]bool{
			"Auto index climbs on demand":     true,
			"Tesla cuts prices across lineup": true,
		},
	}

	if _, err := New(testConfig(), &stubSource{articles: articles}, embedder, nil).Run(context.Background()); err == nil {
		t.Fatal("expected the run to abort when every embedding fails")
	}
}

func TestPipelineEmptyRelevantProducesEmptyReport(t *testing.T) {
	articles := []core.Article{
		{ID: "off1", Title: "Local bakery wins award", Content: "pastry"},
		{ID: "off2", Title: "Weather improves this weekend", Content: "sunshine"},
	}

	r, err := New(testConfig(), &stubSource{articles: articles}, &stubEmbedder{}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if r.Stats.TotalInput != 2 || r.Stats.TotalAutomobile != 0 {
		t.Errorf("stats = %+v, want 2 input and 0 relevant", r.Stats)
	}
	if len(r.Categories) != 0 {
		t.Errorf("categories = %v, want none", r.Categories)
	}
}
