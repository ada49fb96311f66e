// Package summarize attaches optional analyst summaries to stories. Summaries
// are a capability, not a requirement: when no model is configured the
// pipeline runs unchanged and stories simply carry no summary.
package summarize

import (
	"context"
	"errors"

	"autonews/internal/clustering"
	"autonews/internal/core"
	"autonews/internal/logger"
)

// ErrDisabled is returned by the no-op summarizer.
var ErrDisabled = errors.New("summarization is disabled")

// Summarizer produces a short summary for a story from its representative
// article and the titles of the other members.
type Summarizer interface {
	SummarizeStory(ctx context.Context, representative core.Article, memberTitles []string) (string, error)
}

type disabled struct{}

func (disabled) SummarizeStory(context.Context, core.Article, []string) (string, error) {
	return "", ErrDisabled
}

// Disabled returns a summarizer that always reports ErrDisabled.
func Disabled() Summarizer {
	return disabled{}
}

// Stories summarizes each story in place, writing the result to the
// representative member's Summary field. A per-story failure is logged and
// skipped; summaries never break a run. Returns the number summarized.
func Stories(ctx context.Context, s Summarizer, stories []clustering.Story) int {
	done := 0
	for i := range stories {
		story := &stories[i]
		rep := story.Representative()

		titles := make([]string, 0, len(story.Members)-1)
		for j := range story.Members {
			if j != story.RepIndex {
				titles = append(titles, story.Members[j].Title)
			}
		}

		summary, err := s.SummarizeStory(ctx, *rep, titles)
		if err != nil {
			if !errors.Is(err, ErrDisabled) {
				logger.Warn("Story summarization failed", "title", rep.Title, "error", err.Error())
			}
			continue
		}
		rep.Summary = summary
		done++
	}
	return done
}
