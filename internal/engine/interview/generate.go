package interview

import (
	"log/slog"
	"math/rand/v2"
)

// Outcome distinguishes a normal result from a degraded fallback. Generation
// and analysis are total functions: every input yields a usable value, and
// the outcome makes the fallback path visible to the caller.
type Outcome int

const (
	// OutcomeOK means the result was computed normally.
	OutcomeOK Outcome = iota
	// OutcomeTemplateFallback means template selection produced nothing and
	// the default question set was returned instead.
	OutcomeTemplateFallback
	// OutcomeEmptyAnswer means the answer was blank and the analysis is the
	// fixed neutral fallback.
	OutcomeEmptyAnswer
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTemplateFallback:
		return "template_fallback"
	case OutcomeEmptyAnswer:
		return "empty_answer"
	}
	return "ok"
}

// Question is a single generated interview question.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// Generate builds up to count interview questions for a job description at
// the given difficulty. Categories are chosen from the description text,
// each contributing a random sample from its template pool; if the combined
// selection falls short, the remainder is backfilled from all pools at the
// requested difficulty under the "general" category. rng may be nil, in
// which case the shared global source is used.
func Generate(jobDescription, jobTitle, difficulty string, count int, rng *rand.Rand) ([]Question, Outcome) {
	if count <= 0 {
		return []Question{}, OutcomeOK
	}

	categories := SelectCategories(jobDescription)
	perCategory := (count+len(categories)-1)/len(categories) + 1

	var questions []Question
	for _, category := range categories {
		pool := questionTemplates[category][difficulty]
		if pool == nil {
			pool = questionTemplates[category][DifficultyMedium]
		}
		for _, q := range sample(rng, pool, perCategory) {
			questions = append(questions, Question{Question: q, Category: category})
		}
	}

	if len(questions) < count {
		var all []string
		for _, category := range categoryOrder {
			all = append(all, questionTemplates[category][difficulty]...)
		}
		for _, q := range sample(rng, all, count-len(questions)) {
			questions = append(questions, Question{Question: q, Category: CategoryGeneral})
		}
	}

	if len(questions) == 0 {
		slog.Warn("interview: template selection empty, using defaults",
			slog.String("difficulty", difficulty))
		return DefaultQuestions(count), OutcomeTemplateFallback
	}

	if len(questions) > count {
		questions = questions[:count]
	}

	slog.Info("interview: questions generated",
		slog.String("job_title", jobTitle),
		slog.String("difficulty", difficulty),
		slog.Int("count", len(questions)),
	)
	return questions, OutcomeOK
}

// sample returns up to n random elements of pool without replacement.
func sample(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	idx := perm(rng, len(pool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

func perm(rng *rand.Rand, n int) []int {
	if rng != nil {
		return rng.Perm(n)
	}
	return rand.Perm(n)
}
