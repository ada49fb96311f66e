// Package clustering groups articles within a category into stories: sets of
// articles covering the same underlying event. Grouping combines embedding
// similarity with entity-based veto rules so that, say, two different brands
// posting similar launch headlines do not collapse into one story.
package clustering

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"autonews/internal/core"
	"autonews/internal/logger"
)

// repTitleMaxChars caps the representative title quoted in duplicate reasons.
const repTitleMaxChars = 45

// Story is a group of articles about the same event. Exactly one member is
// the representative; the others carry a DuplicateReason pointing at it.
// Members stay in ascending input order, so Members[0] has the lowest index.
type Story struct {
	Members   []core.Article
	RepIndex  int // index into Members of the representative
	MinIndex  int // lowest input index across members, for deterministic ordering
	Coherence float64
}

// Representative returns the story's representative article.
func (s *Story) Representative() *core.Article {
	return &s.Members[s.RepIndex]
}

// Clusterer groups the articles of one category into stories. It holds only
// thresholds and is safe for concurrent use across categories.
type Clusterer struct {
	duplicateThreshold      float64 // minimum similarity to consider a merge
	brandOverrideSimilarity float64 // required when exactly one side names a brand
	strayEvictionThreshold  float64 // below this, an entity-less stray leaves its story
}

// NewClusterer creates a clusterer with the given thresholds, all in [0,1].
func NewClusterer(duplicateThreshold, brandOverrideSimilarity, strayEvictionThreshold float64) *Clusterer {
	return &Clusterer{
		duplicateThreshold:      duplicateThreshold,
		brandOverrideSimilarity: brandOverrideSimilarity,
		strayEvictionThreshold:  strayEvictionThreshold,
	}
}

// Cluster partitions the articles into stories. Every input article lands in
// exactly one story. Articles must carry unit-normalized embeddings of equal
// dimension; the category name is used only for logging.
func (c *Clusterer) Cluster(category string, articles []core.Article) []Story {
	n := len(articles)
	if n == 0 {
		return nil
	}

	sim := similarityMatrix(articles)

	entities := make([]entitySet, n)
	for i, a := range articles {
		entities[i] = extractEntities(a.Title)
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := sim.At(i, j)
			if s < c.duplicateThreshold {
				continue
			}
			// Two different branded events never merge, no matter how
			// similar the embeddings look.
			if entities[i].hasBrand() && entities[j].hasBrand() && !entities[i].sharesBrand(entities[j]) {
				continue
			}
			// When only one side names a brand the bar is higher.
			if entities[i].hasBrand() != entities[j].hasBrand() && s < c.brandOverrideSimilarity {
				continue
			}
			uf.union(i, j)
		}
	}

	var stories []Story
	for _, members := range groupByRoot(uf, n) {
		stories = append(stories, c.materialize(members, articles, entities, sim)...)
	}

	sort.Slice(stories, func(a, b int) bool { return stories[a].MinIndex < stories[b].MinIndex })

	logger.Debug("Clustered category", "category", category, "articles", n, "stories", len(stories))

	return stories
}

// similarityMatrix computes all pairwise cosine similarities as E times its
// transpose; embeddings are unit length, so the dot product is the cosine.
func similarityMatrix(articles []core.Article) *mat.Dense {
	n := len(articles)
	dim := len(articles[0].Embedding)

	flat := make([]float64, 0, n*dim)
	for _, a := range articles {
		flat = append(flat, a.Embedding...)
	}
	embeddings := mat.NewDense(n, dim, flat)

	var sim mat.Dense
	sim.Mul(embeddings, embeddings.T())
	return &sim
}

// groupByRoot materializes the union-find sets as member index lists, ordered
// by each set's lowest member index. Members within a set stay ascending.
func groupByRoot(uf *unionFind, n int) [][]int {
	byRoot := make(map[int][]int, n)
	var order []int
	for i := 0; i < n; i++ {
		root := uf.find(i)
		if _, seen := byRoot[root]; !seen {
			order = append(order, root)
		}
		byRoot[root] = append(byRoot[root], i)
	}

	groups := make([][]int, 0, len(order))
	for _, root := range order {
		groups = append(groups, byRoot[root])
	}
	return groups
}

// materialize turns one merged member set into stories: the main story plus a
// singleton per evicted stray. Eviction is a single pass against the original
// membership; it never cascades.
func (c *Clusterer) materialize(members []int, articles []core.Article, entities []entitySet, sim *mat.Dense) []Story {
	rep := members[0]
	for _, m := range members[1:] {
		if len(articles[m].Content) > len(articles[rep].Content) {
			rep = m
		}
	}

	kept := make([]int, 0, len(members))
	var stories []Story
	for _, m := range members {
		if m == rep {
			kept = append(kept, m)
			continue
		}
		// A stray shares nothing with the representative and sits far from
		// it; it gets its own singleton story instead of dragging coherence
		// down.
		if sim.At(m, rep) < c.strayEvictionThreshold && !entities[m].sharesAny(entities[rep]) {
			stories = append(stories, singletonStory(articles[m], m))
			continue
		}
		kept = append(kept, m)
	}

	stories = append(stories, c.buildStory(kept, rep, articles, sim))

	return stories
}

func singletonStory(a core.Article, index int) Story {
	a.IsRepresentative = true
	a.DuplicateReason = ""
	a.ClusterCoherenceScore = 1.0
	return Story{Members: []core.Article{a}, RepIndex: 0, MinIndex: index, Coherence: 1.0}
}

// buildStory assembles the final story from the kept member indices, which
// are ascending and include rep.
func (c *Clusterer) buildStory(kept []int, rep int, articles []core.Article, sim *mat.Dense) Story {
	coherence := meanPairwiseSimilarity(kept, sim)

	story := Story{
		Members:   make([]core.Article, 0, len(kept)),
		MinIndex:  kept[0],
		Coherence: coherence,
	}
	for _, m := range kept {
		a := articles[m]
		a.ClusterCoherenceScore = coherence
		if m == rep {
			a.IsRepresentative = true
			a.DuplicateReason = ""
			story.RepIndex = len(story.Members)
		} else {
			a.IsRepresentative = false
			a.DuplicateReason = fmt.Sprintf("Similar to: '%s' (sim=%.2f)",
				truncateTitle(articles[rep].Title), sim.At(m, rep))
		}
		story.Members = append(story.Members, a)
	}

	return story
}

// meanPairwiseSimilarity averages similarity over all member pairs; a
// singleton is perfectly coherent with itself.
func meanPairwiseSimilarity(members []int, sim *mat.Dense) float64 {
	if len(members) < 2 {
		return 1.0
	}

	total := 0.0
	pairs := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			total += sim.At(members[i], members[j])
			pairs++
		}
	}
	return core.Clamp01(total / float64(pairs))
}

func truncateTitle(title string) string {
	if len(title) <= repTitleMaxChars {
		return title
	}
	return title[:repTitleMaxChars] + "..."
}
