package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey            string
	LLMAPIBase           string
	LLMModel             string
	LLMTemperature       float64
	LLMMaxTokens         int
	MaxContentChars      int
	FetchTimeout         time.Duration
	FetchPerSecond       float64
	FetchBurst           int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	DatabaseURL          string
	HTTPClient           *http.Client
	LLMClient            *llm.Client // nil = interview_coach disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (ats, interview).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
