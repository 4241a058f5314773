package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_prep/internal/engine"
)

// CoachReview is the LLM coach's evaluation of an answer.
type CoachReview struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Feedback     string   `json:"feedback"`
}

const coachPromptFmt = `Analyze this interview response and provide feedback.

Question: %s

Candidate's Answer: %s

Job Requirements: %s

Provide analysis in the following format:
SCORE: (0-100)
STRENGTHS:
- Point 1
- Point 2
IMPROVEMENTS:
- Point 1
- Point 2
FEEDBACK: Brief overall feedback`

// Coach asks the configured LLM to review an answer against the job
// requirements. Returns engine.ErrLLMDisabled when no client is configured.
func Coach(ctx context.Context, question, answer, jobDescription string) (*CoachReview, error) {
	prompt := fmt.Sprintf(coachPromptFmt,
		engine.TruncateRunes(question, 500, "..."),
		engine.TruncateRunes(answer, 3000, "..."),
		engine.TruncateRunes(jobDescription, 2000, "..."),
	)

	reply, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("interview: coach: %w", err)
	}
	return ParseCoachReply(reply), nil
}

// ParseCoachReply extracts the structured review from the LLM's line-based
// reply. Unparseable lines are skipped; a malformed reply degrades to a
// zero-score review rather than an error.
func ParseCoachReply(reply string) *CoachReview {
	review := &CoachReview{
		Strengths:    []string{},
		Improvements: []string{},
	}

	section := ""
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "SCORE:"):
			review.Score = parseScoreDigits(strings.TrimPrefix(line, "SCORE:"))
		case strings.HasPrefix(line, "STRENGTHS:"):
			section = "strengths"
		case strings.HasPrefix(line, "IMPROVEMENTS:"):
			section = "improvements"
		case strings.HasPrefix(line, "FEEDBACK:"):
			section = ""
			review.Feedback = strings.TrimSpace(strings.TrimPrefix(line, "FEEDBACK:"))
		case strings.HasPrefix(line, "- "):
			point := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			switch section {
			case "strengths":
				review.Strengths = append(review.Strengths, point)
			case "improvements":
				review.Improvements = append(review.Improvements, point)
			}
		}
	}

	if review.Score < 0 {
		review.Score = 0
	}
	if review.Score > 100 {
		review.Score = 100
	}
	return review
}

// parseScoreDigits pulls the digits out of a score line like "(0-100)" text
// the model sometimes echoes, or a plain "85".
func parseScoreDigits(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			if n > 1000 {
				break
			}
		} else if seen {
			break
		}
	}
	return n
}
