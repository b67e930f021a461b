package core

import (
	"sort"

	"github.com/transitlab/transitscope/schema"
)

// RankSystems sorts batch summaries by their best fit score in descending
// order and returns the top 'limit' entries. If limit is greater than the
// number of systems, all systems are returned in sorted order. Equal scores
// fall back to the identifier so the ranking is stable even though the
// worker pool delivers summaries in completion order.
func RankSystems(systems []schema.SystemSummary, limit int) []schema.SystemSummary {
	sort.Slice(systems, func(i, j int) bool {
		if systems[i].BestScore != systems[j].BestScore {
			return systems[i].BestScore > systems[j].BestScore
		}
		return systems[i].Identifier < systems[j].Identifier
	})
	if len(systems) > limit {
		return systems[:limit]
	}
	return systems
}
