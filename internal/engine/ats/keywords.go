// Package ats implements the deterministic resume / job-description
// compatibility scorer: keyword extraction and comparison, skill taxonomy
// matching, format checks, and the weighted composite score. Everything
// here is a pure function over the input text plus fixed taxonomy tables —
// no I/O, no errors, safe for concurrent use.
package ats

import (
	"sort"
	"strings"
)

// edgePunct is stripped from both ends of each token before filtering.
const edgePunct = ".,;:!?"

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true, "by": true, "from": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"have": true, "has": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true,
	"that": true, "this": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true,
}

// ExtractKeywords tokenizes text into a keyword sequence: lowercased,
// whitespace-split, edge punctuation stripped, stop words and short tokens
// (<= 3 chars) dropped. Duplicates are kept; comparison collapses them.
// Empty input yields an empty sequence — extraction never fails.
func ExtractKeywords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, edgePunct)
		if len(w) > 3 && !stopWords[w] {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// Comparison is the result of matching resume keywords against job keywords.
type Comparison struct {
	Matched         []string // present in both, sorted
	Missing         []string // job-only, sorted
	MatchPercentage float64  // 100 * |matched| / |job keywords|, 0 if job set empty
}

// CompareKeywords treats both keyword sequences as sets and reports the
// overlap from the job's perspective. Output lists are sorted for
// determinism — callers slice top-N for display and tests compare exact
// values.
func CompareKeywords(resumeKeywords, jobKeywords []string) Comparison {
	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = true
	}
	jobSet := make(map[string]bool, len(jobKeywords))
	for _, kw := range jobKeywords {
		jobSet[kw] = true
	}

	matched := []string{}
	missing := []string{}
	for kw := range jobSet {
		if resumeSet[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var pct float64
	if len(jobSet) > 0 {
		pct = float64(len(matched)) / float64(len(jobSet)) * 100
	}

	return Comparison{Matched: matched, Missing: missing, MatchPercentage: pct}
}
