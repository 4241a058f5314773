package interview

import (
	"log/slog"
	"math"
	"strings"
)

// Word-count bands per difficulty. Unknown difficulties fall back to the
// medium band.
var (
	minWords = map[string]int{DifficultyEasy: 20, DifficultyMedium: 40, DifficultyHard: 60}
	maxWords = map[string]int{DifficultyEasy: 100, DifficultyMedium: 200, DifficultyHard: 300}
)

// QualityMetrics records which quality signals an answer triggered and the
// total score adjustment they earned.
type QualityMetrics struct {
	HasExamples   bool `json:"has_examples"`
	HasMetrics    bool `json:"has_metrics"`
	HasReflection bool `json:"has_reflection"`
	ClarityOK     bool `json:"clarity_ok"`
	Adjustment    int  `json:"adjustment"`
}

// Analysis is the scored evaluation of a single answer.
type Analysis struct {
	Score          float64        `json:"score"`
	BaseScore      float64        `json:"base_score"`
	QualityMetrics QualityMetrics `json:"quality_metrics"`
	Feedback       string         `json:"feedback"`
	Category       string         `json:"category"`
}

var exampleKeywords = []string{"for example", "specifically", "instance", "case", "project", "situation"}

var metricKeywords = []string{"increased", "decreased", "improved", "reduced", "%", "number", "result"}

var reflectionKeywords = []string{"learned", "realized", "understood", "improved", "next time", "going forward"}

// Analyze scores a free-text interview answer against its question category
// and difficulty: a length-based base score adjusted by quality signals,
// plus rule-driven feedback text. A blank answer yields the fixed neutral
// fallback analysis.
func Analyze(question, answer, category, difficulty string) (*Analysis, Outcome) {
	if strings.TrimSpace(answer) == "" {
		return &Analysis{
			Score:     50,
			BaseScore: 50,
			Feedback:  "Unable to analyze response",
			Category:  category,
		}, OutcomeEmptyAnswer
	}

	base := baseScore(answer, difficulty)
	metrics := qualityMetrics(answer)

	final := base + float64(metrics.Adjustment)
	final = math.Min(100, math.Max(0, final))

	analysis := &Analysis{
		Score:          round2(final),
		BaseScore:      round2(base),
		QualityMetrics: metrics,
		Feedback:       buildFeedback(answer, category, metrics, final),
		Category:       category,
	}

	slog.Debug("interview: response analyzed",
		slog.Float64("score", analysis.Score),
		slog.String("category", category),
	)
	return analysis, OutcomeOK
}

// baseScore maps answer word count to 0-100 against the difficulty band:
// below the minimum it scales as 100*wc/min, inside the band linearly from
// 50 to 100, and above the maximum it decays from 50.
func baseScore(answer, difficulty string) float64 {
	wordCount := len(strings.Fields(answer))

	minW, ok := minWords[difficulty]
	if !ok {
		minW = minWords[DifficultyMedium]
	}
	maxW, ok := maxWords[difficulty]
	if !ok {
		maxW = maxWords[DifficultyMedium]
	}

	var score float64
	switch {
	case wordCount < minW:
		score = float64(wordCount) / float64(minW) * 100
	case wordCount > maxW:
		score = 50 + float64(maxW-wordCount)/float64(maxW)*50
	default:
		score = 50 + float64(wordCount-minW)/float64(maxW-minW)*50
	}

	return math.Min(100, math.Max(0, score))
}

// qualityMetrics detects content signals in the answer. Adjustments: concrete
// examples +10, measurable results +10, reflection +5, average sentence
// length between 10 and 25 words +5, capped at 30.
func qualityMetrics(answer string) QualityMetrics {
	var m QualityMetrics
	lower := strings.ToLower(answer)

	if containsAny(lower, exampleKeywords) {
		m.HasExamples = true
		m.Adjustment += 10
	}
	if containsAny(lower, metricKeywords) {
		m.HasMetrics = true
		m.Adjustment += 10
	}
	if containsAny(lower, reflectionKeywords) {
		m.HasReflection = true
		m.Adjustment += 5
	}

	sentences := strings.Split(answer, ".")
	avgLen := float64(len(strings.Fields(answer))) / float64(len(sentences))
	if avgLen > 10 && avgLen < 25 {
		m.ClarityOK = true
		m.Adjustment += 5
	}

	if m.Adjustment > 30 {
		m.Adjustment = 30
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
