// Package relevance scores articles against tiered automotive keyword
// dictionaries and partitions them into relevant and rejected sets.
package relevance

import (
	"fmt"
	"strings"

	"autonews/internal/core"
)

// maxMatchedKeywords caps how many tier-tagged keyword hits are recorded on
// an article for explainability.
const maxMatchedKeywords = 5

// tier pairs a keyword list with its per-match weight and a label used for
// explanation tagging.
type tier struct {
	label    string
	weight   float64
	keywords []string
}

// Scorer is a keyword-based relevance scorer. It is pure and stateless after
// construction; the same text always yields the same score.
type Scorer struct {
	tiers []tier
}

// NewScorer builds a scorer over the built-in tier dictionaries. Keywords are
// lowercased once here so scoring never re-normalizes the vocabulary.
func NewScorer() *Scorer {
	return newScorerWithTiers([]tier{
		{label: "T1", weight: Tier1Weight, keywords: tier1Keywords},
		{label: "T2", weight: Tier2Weight, keywords: tier2Keywords},
		{label: "T3", weight: Tier3Weight, keywords: tier3Keywords},
	})
}

func newScorerWithTiers(tiers []tier) *Scorer {
	prepared := make([]tier, len(tiers))
	for i, t := range tiers {
		keywords := make([]string, len(t.keywords))
		for j, kw := range t.keywords {
			keywords[j] = strings.ToLower(kw)
		}
		prepared[i] = tier{label: t.label, weight: t.weight, keywords: keywords}
	}
	return &Scorer{tiers: prepared}
}

// Score computes an article's relevance score in [0,1] from its title and
// content, case-folded. Each keyword contributes its tier weight exactly once
// when it occurs as a substring anywhere in the text; contributions sum across
// tiers and are clamped. Empty text scores 0. The returned matches are
// tier-tagged keyword hits, capped at maxMatchedKeywords.
func (s *Scorer) Score(title, content string) (float64, []string) {
	text := strings.ToLower(title + " " + content)

	score := 0.0
	var matched []string

	for _, t := range s.tiers {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				score += t.weight
				if len(matched) < maxMatchedKeywords {
					matched = append(matched, fmt.Sprintf("%s:%s", t.label, kw))
				}
			}
		}
	}

	return core.Clamp01(score), matched
}

// Partition scores every article and splits the input into relevant
// (score >= threshold) and rejected sets. The two slices preserve the input's
// relative order, cover the input exactly, and never overlap. Scores and
// keyword hits are recorded on the articles in both partitions.
func (s *Scorer) Partition(articles []core.Article, threshold float64) (relevant, rejected []core.Article) {
	for _, a := range articles {
		score, matched := s.Score(a.Title, a.Content)
		a.AutoScore = score
		a.MatchedKeywords = matched

		if score >= threshold {
			relevant = append(relevant, a)
		} else {
			rejected = append(rejected, a)
		}
	}
	return relevant, rejected
}
