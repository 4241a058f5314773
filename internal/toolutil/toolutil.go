// Package toolutil provides shared input validation and normalisation
// helpers for go_prep MCP tools.
package toolutil

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty and description limits enforced at the tool boundary. The
// scoring engines themselves are total functions; these keep garbage input
// from producing meaningless scores.
const (
	MinJobDescriptionChars = 50
	MaxJobDescriptionChars = 5000
	MinAnswerChars         = 10
	MaxAnswerChars         = 5000
)

// ValidateJobDescription checks that a job description is non-empty and
// within the accepted length band.
func ValidateJobDescription(jd string) error {
	if strings.TrimSpace(jd) == "" {
		return errors.New("job description cannot be empty")
	}
	if len(jd) < MinJobDescriptionChars {
		return fmt.Errorf("job description must be at least %d characters", MinJobDescriptionChars)
	}
	if len(jd) > MaxJobDescriptionChars {
		return fmt.Errorf("job description cannot exceed %d characters", MaxJobDescriptionChars)
	}
	return nil
}

// ValidateAnswer checks that an interview answer is non-empty and within the
// accepted length band.
func ValidateAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return errors.New("answer cannot be empty")
	}
	if len(answer) < MinAnswerChars {
		return fmt.Errorf("answer must be at least %d characters", MinAnswerChars)
	}
	if len(answer) > MaxAnswerChars {
		return fmt.Errorf("answer cannot exceed %d characters", MaxAnswerChars)
	}
	return nil
}

// ValidDifficulty reports whether s is a recognised difficulty level.
func ValidDifficulty(s string) bool {
	switch s {
	case "easy", "medium", "hard":
		return true
	}
	return false
}

// NormDifficulty normalises a difficulty field: lowercased, empty → "medium".
// Returns an error for anything else.
func NormDifficulty(s string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(s))
	if d == "" {
		return "medium", nil
	}
	if !ValidDifficulty(d) {
		return "", fmt.Errorf("invalid difficulty %q (valid: easy, medium, hard)", d)
	}
	return d, nil
}

// NormCount normalises a question count: zero → def, clamped to [1, max].
func NormCount(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
