package ats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sectionNames are the canonical resume section headers an ATS looks for.
var sectionNames = []string{"experience", "education", "skills", "contact", "summary"}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\b(?:\+?1[-.]?)?(?:\d{3})[-.]?(?:\d{3})[-.]?(?:\d{4})\b`)
)

// specialChars counted toward the formatting-noise ratio.
const specialChars = "!@#$%^&*()"

// FormatScore rates how ATS-friendly the resume text is, 0-100, from five
// additive checks: section names (proportional up to 30), email (+20),
// phone (+20), special-character density below 5% (+15), and word count
// strictly between 200 and 2000 (+15). The density ratio is computed over
// the full text including whitespace. Empty text scores 0.
func FormatScore(resumeText string) float64 {
	if resumeText == "" {
		return 0
	}

	var score float64
	lower := strings.ToLower(resumeText)

	sectionCount := 0
	for _, section := range sectionNames {
		if strings.Contains(lower, section) {
			sectionCount++
		}
	}
	score += float64(sectionCount) / float64(len(sectionNames)) * 30

	if emailRe.MatchString(resumeText) {
		score += 20
	}
	if phoneRe.MatchString(resumeText) {
		score += 20
	}

	special := 0
	for _, r := range resumeText {
		if strings.ContainsRune(specialChars, r) {
			special++
		}
	}
	if float64(special)/float64(utf8.RuneCountInString(resumeText)) < 0.05 {
		score += 15
	}

	wordCount := len(strings.Fields(resumeText))
	if wordCount > 200 && wordCount < 2000 {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}
