package schema

// EnrichedSystemSummary adds presentation data to a SystemSummary.
type EnrichedSystemSummary struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	SystemSummary
}

// GetPlainLabel returns a plain text label describing how much of a profile
// the catalog sources could resolve, based on the completeness percentage.
func GetPlainLabel(completeness float64) string {
	switch {
	case completeness >= 90:
		return "Complete"
	case completeness >= 60:
		return "Partial"
	case completeness >= 30:
		return "Sparse"
	default:
		return "Minimal"
	}
}

// EnrichSystems adds rank and label to a list of batch summaries.
func EnrichSystems(systems []SystemSummary) []EnrichedSystemSummary {
	output := make([]EnrichedSystemSummary, len(systems))
	for i, s := range systems {
		output[i] = EnrichedSystemSummary{
			Rank:          i + 1,
			Label:         GetPlainLabel(s.Completeness),
			SystemSummary: s,
		}
	}
	return output
}
