package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ScoreRequests    atomic.Int64
	QuestionRequests atomic.Int64
	AnalyzeRequests  atomic.Int64
	CoachRequests    atomic.Int64
	SessionOps       atomic.Int64
	HistoryOps       atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
	FetchRequests    atomic.Int64
	FetchErrors      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"score_requests":    metrics.ScoreRequests.Load(),
		"question_requests": metrics.QuestionRequests.Load(),
		"analyze_requests":  metrics.AnalyzeRequests.Load(),
		"coach_requests":    metrics.CoachRequests.Load(),
		"session_ops":       metrics.SessionOps.Load(),
		"history_ops":       metrics.HistoryOps.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
		"fetch_requests":    metrics.FetchRequests.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"score_requests", "question_requests", "analyze_requests",
		"coach_requests", "session_ops", "history_ops",
		"llm_calls", "llm_errors",
		"fetch_requests", "fetch_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer and sub-packages.
func IncrScoreRequests()    { metrics.ScoreRequests.Add(1) }
func IncrQuestionRequests() { metrics.QuestionRequests.Add(1) }
func IncrAnalyzeRequests()  { metrics.AnalyzeRequests.Add(1) }
func IncrCoachRequests()    { metrics.CoachRequests.Add(1) }
func IncrSessionOps()       { metrics.SessionOps.Add(1) }
func IncrHistoryOps()       { metrics.HistoryOps.Add(1) }
