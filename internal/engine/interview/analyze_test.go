package interview

import (
	"strings"
	"testing"
)

func TestBaseScore(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		difficulty string
		want       float64
	}{
		{"five words at medium", 5, DifficultyMedium, 12.5},
		{"at minimum bound", 40, DifficultyMedium, 50},
		{"at maximum bound", 200, DifficultyMedium, 100},
		{"midpoint of medium band", 120, DifficultyMedium, 75},
		{"easy band minimum", 20, DifficultyEasy, 50},
		{"unknown difficulty uses medium band", 40, "weird", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := strings.TrimSpace(strings.Repeat("word ", tt.words))
			got := baseScore(answer, tt.difficulty)
			if got != tt.want {
				t.Errorf("baseScore(%d words, %s) = %v, want %v", tt.words, tt.difficulty, got, tt.want)
			}
		})
	}

	t.Run("over-length answers are penalized but clamped", func(t *testing.T) {
		answer := strings.Repeat("word ", 500)
		got := baseScore(answer, DifficultyMedium)
		if got < 0 || got >= 50 {
			t.Errorf("baseScore(500 words) = %v, want within [0,50)", got)
		}
	})

	t.Run("non-decreasing within band", func(t *testing.T) {
		prev := 0.0
		for words := 40; words <= 200; words += 20 {
			answer := strings.Repeat("word ", words)
			got := baseScore(answer, DifficultyMedium)
			if got < prev {
				t.Fatalf("baseScore decreased at %d words: %v < %v", words, got, prev)
			}
			prev = got
		}
	})
}

func TestQualityMetrics(t *testing.T) {
	tests := []struct {
		name          string
		answer        string
		hasExamples   bool
		hasMetrics    bool
		hasReflection bool
		adjustment    int
	}{
		{
			name:       "no signals",
			answer:     "short words only here",
			adjustment: 0,
		},
		{
			name:        "example phrase",
			answer:      "For example we shipped it",
			hasExamples: true,
			adjustment:  10,
		},
		{
			name:       "metric phrase",
			answer:     "We increased throughput a lot",
			hasMetrics: true,
			adjustment: 10,
		},
		{
			name:          "reflection phrase",
			answer:        "I learned to ship smaller batches",
			hasReflection: true,
			adjustment:    5,
		},
		{
			name:          "all keyword signals",
			answer:        "For example we increased sales and I learned things",
			hasExamples:   true,
			hasMetrics:    true,
			hasReflection: true,
			adjustment:    25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := qualityMetrics(tt.answer)
			if m.HasExamples != tt.hasExamples {
				t.Errorf("HasExamples = %v, want %v", m.HasExamples, tt.hasExamples)
			}
			if m.HasMetrics != tt.hasMetrics {
				t.Errorf("HasMetrics = %v, want %v", m.HasMetrics, tt.hasMetrics)
			}
			if m.HasReflection != tt.hasReflection {
				t.Errorf("HasReflection = %v, want %v", m.HasReflection, tt.hasReflection)
			}
			if m.Adjustment != tt.adjustment {
				t.Errorf("Adjustment = %d, want %d", m.Adjustment, tt.adjustment)
			}
		})
	}

	t.Run("clarity band", func(t *testing.T) {
		// Two 20-word sentences: the trailing period makes a third empty
		// segment, so the average is 40/3 ~= 13.3, inside (10,25).
		sentence := strings.TrimSpace(strings.Repeat("calm ", 20))
		m := qualityMetrics(sentence + ". " + sentence + ".")
		if !m.ClarityOK {
			t.Error("expected ClarityOK for 20-word sentences")
		}
		if m.Adjustment != 5 {
			t.Errorf("Adjustment = %d, want 5", m.Adjustment)
		}
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("empty answer degrades to neutral", func(t *testing.T) {
		analysis, outcome := Analyze("Tell me about yourself.", "  ", CategoryBehavioral, DifficultyMedium)
		if outcome != OutcomeEmptyAnswer {
			t.Fatalf("outcome = %v, want OutcomeEmptyAnswer", outcome)
		}
		if analysis.Score != 50 || analysis.BaseScore != 50 {
			t.Errorf("got score=%v base=%v, want 50/50", analysis.Score, analysis.BaseScore)
		}
		if analysis.Feedback != "Unable to analyze response" {
			t.Errorf("feedback = %q", analysis.Feedback)
		}
	})

	t.Run("score within range and category echoed", func(t *testing.T) {
		answer := strings.Repeat("solid answer text here ", 15)
		analysis, outcome := Analyze("Describe a challenge.", answer, CategoryBehavioral, DifficultyMedium)
		if outcome != OutcomeOK {
			t.Fatalf("outcome = %v, want OutcomeOK", outcome)
		}
		if analysis.Score < 0 || analysis.Score > 100 {
			t.Errorf("score = %v, want within [0,100]", analysis.Score)
		}
		if analysis.Category != CategoryBehavioral {
			t.Errorf("category = %q, want behavioral", analysis.Category)
		}
		if analysis.Feedback == "" {
			t.Error("feedback must not be empty")
		}
	})

	t.Run("adjustment caps the final score at 100", func(t *testing.T) {
		base := strings.TrimSpace(strings.Repeat("steady ", 195))
		answer := base + ". For example we increased revenue and I learned a lot."
		analysis, _ := Analyze("q", answer, CategoryTechnical, DifficultyMedium)
		if analysis.Score > 100 {
			t.Errorf("score = %v, want <= 100", analysis.Score)
		}
	})
}

func TestBuildFeedback(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		category string
		metrics  QualityMetrics
		score    float64
		want     string
	}{
		{
			name:     "excellent with everything present",
			answer:   strings.Repeat("w ", 60),
			category: CategoryBehavioral,
			metrics:  QualityMetrics{HasExamples: true, HasReflection: true, ClarityOK: true},
			score:    85,
			want:     "Excellent response!",
		},
		{
			name:     "behavioral missing signals",
			answer:   "short",
			category: CategoryBehavioral,
			metrics:  QualityMetrics{ClarityOK: true},
			score:    65,
			want: "Good response with room for improvement. " +
				"Consider including specific examples from your experience. " +
				"Discuss what you learned from this experience.",
		},
		{
			name:     "technical short answer",
			answer:   "we used caching",
			category: CategoryTechnical,
			metrics:  QualityMetrics{ClarityOK: true},
			score:    40,
			want: "Response needs more development. " +
				"Include specific technical details or metrics in your answer. " +
				"Provide more detailed technical explanation.",
		},
		{
			name:     "situational missing reflection",
			answer:   "i would escalate",
			category: CategorySituational,
			metrics:  QualityMetrics{},
			score:    70,
			want: "Good response with room for improvement. " +
				"Explain your reasoning and how you would approach this situation. " +
				"Try to use clearer, more concise sentences.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFeedback(tt.answer, tt.category, tt.metrics, tt.score)
			if got != tt.want {
				t.Errorf("buildFeedback() = %q, want %q", got, tt.want)
			}
		})
	}
}
