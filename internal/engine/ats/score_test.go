package ats

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Summary
Contact: jane.smith@example.com 555-123-4567
Experience: Senior backend engineer building services in Python and Go,
deployed with Docker and Kubernetes on AWS. Improved API latency by 40%.
Education: BSc Computer Science
Skills: Python, Go, PostgreSQL, Docker, Kubernetes, AWS, leadership`

const sampleJob = `We are hiring a backend engineer with strong Python skills.
Experience with Docker, Kubernetes and AWS required. PostgreSQL knowledge
and leadership qualities are a plus.`

func TestScore(t *testing.T) {
	t.Run("score within range", func(t *testing.T) {
		report, outcome := Score(sampleResume, sampleJob)
		if outcome != OutcomeOK {
			t.Fatalf("outcome = %v, want OutcomeOK", outcome)
		}
		for name, v := range map[string]float64{
			"score":         report.Score,
			"keyword_score": report.KeywordScore,
			"skill_score":   report.SkillScore,
			"format_score":  report.FormatScore,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s = %v, want within [0,100]", name, v)
			}
		}
		if len(report.MatchedKeywords) > 10 {
			t.Errorf("matched_keywords has %d entries, want <= 10", len(report.MatchedKeywords))
		}
		if len(report.MissingKeywords) > 10 {
			t.Errorf("missing_keywords has %d entries, want <= 10", len(report.MissingKeywords))
		}
		if len(report.Strengths) == 0 {
			t.Error("strengths must never be empty")
		}
		if len(report.Improvements) == 0 {
			t.Error("improvements must never be empty")
		}
	})

	t.Run("empty job description degrades", func(t *testing.T) {
		report, outcome := Score(sampleResume, "   ")
		if outcome != OutcomeEmptyJobDescription {
			t.Fatalf("outcome = %v, want OutcomeEmptyJobDescription", outcome)
		}
		if report.Score != 0 || report.KeywordScore != 0 || report.SkillScore != 0 || report.FormatScore != 0 {
			t.Errorf("expected all-zero scores, got %+v", report)
		}
		if len(report.Improvements) == 0 {
			t.Error("improvements must be non-empty on empty job description")
		}
		if report.MatchedKeywords == nil || report.MissingKeywords == nil || report.Strengths == nil {
			t.Error("list fields must be non-nil")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		r1, _ := Score(sampleResume, sampleJob)
		r2, _ := Score(sampleResume, sampleJob)
		if !reflect.DeepEqual(r1, r2) {
			t.Errorf("repeated calls differ:\n%+v\n%+v", r1, r2)
		}
	})

	t.Run("adding a missing keyword never lowers keyword score", func(t *testing.T) {
		before, _ := Score(sampleResume, sampleJob)
		if len(before.MissingKeywords) == 0 {
			t.Skip("no missing keywords to add")
		}
		enriched := sampleResume + " " + strings.Join(before.MissingKeywords, " ")
		after, _ := Score(enriched, sampleJob)
		if after.KeywordScore < before.KeywordScore {
			t.Errorf("keyword_score dropped from %v to %v after adding missing keywords",
				before.KeywordScore, after.KeywordScore)
		}
	})

	t.Run("empty resume still yields a report", func(t *testing.T) {
		report, outcome := Score("", sampleJob)
		if outcome != OutcomeOK {
			t.Fatalf("outcome = %v, want OutcomeOK", outcome)
		}
		if report.KeywordScore != 0 {
			t.Errorf("keyword_score = %v, want 0", report.KeywordScore)
		}
		if report.FormatScore != 0 {
			t.Errorf("format_score = %v, want 0", report.FormatScore)
		}
		if len(report.Improvements) == 0 {
			t.Error("improvements must be non-empty for an empty resume")
		}
	})
}
