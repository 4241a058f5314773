package interview

import "strings"

// buildFeedback assembles the feedback sentence for an analyzed answer: a
// score-tier opener, category-specific advice for signals the answer missed,
// and a clarity note, joined with single spaces.
func buildFeedback(answer, category string, m QualityMetrics, score float64) string {
	var parts []string

	switch {
	case score >= 80:
		parts = append(parts, "Excellent response!")
	case score >= 60:
		parts = append(parts, "Good response with room for improvement.")
	default:
		parts = append(parts, "Response needs more development.")
	}

	switch category {
	case CategoryBehavioral:
		if !m.HasExamples {
			parts = append(parts, "Consider including specific examples from your experience.")
		}
		if !m.HasReflection {
			parts = append(parts, "Discuss what you learned from this experience.")
		}
	case CategoryTechnical:
		if !m.HasMetrics {
			parts = append(parts, "Include specific technical details or metrics in your answer.")
		}
		if len(strings.Fields(answer)) < 50 {
			parts = append(parts, "Provide more detailed technical explanation.")
		}
	case CategorySituational:
		if !m.HasReflection {
			parts = append(parts, "Explain your reasoning and how you would approach this situation.")
		}
	}

	if !m.ClarityOK {
		parts = append(parts, "Try to use clearer, more concise sentences.")
	}

	return strings.Join(parts, " ")
}
