package ats

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Outcome distinguishes a normally computed report from a degraded one.
// Score is a total function: every input yields a usable Report, and the
// outcome makes the degraded path visible instead of hiding it behind a
// swallowed error.
type Outcome int

const (
	// OutcomeOK means the report was computed from real input.
	OutcomeOK Outcome = iota
	// OutcomeEmptyJobDescription means the job description was empty and
	// the report is the fixed all-zero fallback.
	OutcomeEmptyJobDescription
)

func (o Outcome) String() string {
	if o == OutcomeEmptyJobDescription {
		return "empty_job_description"
	}
	return "ok"
}

// Report is the composite ATS compatibility result.
type Report struct {
	Score           float64  `json:"score"`
	KeywordScore    float64  `json:"keyword_score"`
	SkillScore      float64  `json:"skill_score"`
	FormatScore     float64  `json:"format_score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Weighted blend of the three sub-scores.
const (
	keywordWeight = 0.5
	skillWeight   = 0.3
	formatWeight  = 0.2
)

// Score computes the full ATS compatibility report for a resume against a
// job description. An empty job description short-circuits to an all-zero
// report with a fixed error-style improvement line.
func Score(resumeText, jobDescription string) (*Report, Outcome) {
	if strings.TrimSpace(jobDescription) == "" {
		return &Report{
			Strengths:       []string{},
			Improvements:    []string{"Error calculating score: job description is empty"},
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
		}, OutcomeEmptyJobDescription
	}

	resumeKeywords := ExtractKeywords(resumeText)
	jobKeywords := ExtractKeywords(jobDescription)
	comparison := CompareKeywords(resumeKeywords, jobKeywords)

	keywordScore := comparison.MatchPercentage
	skillScore := MatchSkills(resumeText, jobDescription)
	formatScore := FormatScore(resumeText)

	final := clamp(keywordScore*keywordWeight + skillScore*skillWeight + formatScore*formatWeight)

	report := &Report{
		Score:           round2(final),
		KeywordScore:    round2(clamp(keywordScore)),
		SkillScore:      round2(clamp(skillScore)),
		FormatScore:     round2(clamp(formatScore)),
		Strengths:       buildStrengths(final, comparison, skillScore),
		Improvements:    buildImprovements(final, comparison, skillScore),
		MatchedKeywords: topN(comparison.Matched, 10),
		MissingKeywords: topN(comparison.Missing, 10),
	}

	slog.Debug("ats: score calculated",
		slog.Float64("score", report.Score),
		slog.Int("matched", len(comparison.Matched)),
		slog.Int("missing", len(comparison.Missing)),
	)
	return report, OutcomeOK
}

// buildStrengths assembles strength lines in fixed priority order, with a
// single generic fallback line when nothing triggers.
func buildStrengths(score float64, c Comparison, skillScore float64) []string {
	var strengths []string

	if score >= 80 {
		strengths = append(strengths, "Excellent ATS compatibility - strong keyword alignment")
	} else if score >= 60 {
		strengths = append(strengths, "Good ATS compatibility - decent keyword coverage")
	}

	if len(c.Matched) > 5 {
		strengths = append(strengths, "Strong match on key terms: "+strings.Join(topN(c.Matched, 3), ", "))
	}

	if skillScore >= 70 {
		strengths = append(strengths, "Excellent technical skills alignment with job requirements")
	} else if skillScore >= 50 {
		strengths = append(strengths, "Good technical skills coverage")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Resume has basic ATS compatibility")
	}
	return strengths
}

// buildImprovements assembles improvement lines, embedding up to 5 missing
// keywords, with a single "well optimized" fallback when nothing triggers.
func buildImprovements(score float64, c Comparison, skillScore float64) []string {
	var improvements []string

	if score < 70 {
		improvements = append(improvements, "Add more relevant keywords from the job description")
	}

	if len(c.Missing) > 0 {
		improvements = append(improvements, fmt.Sprintf("Consider incorporating: %s", strings.Join(topN(c.Missing, 5), ", ")))
	}

	if skillScore < 60 {
		improvements = append(improvements, "Highlight more technical skills relevant to the position")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Resume is well-optimized for ATS systems")
	}
	return improvements
}

// topN returns the first n elements of s (s itself if shorter).
func topN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
