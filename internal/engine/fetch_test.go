package engine

import (
	"strings"
	"testing"
)

func TestIsRetryableStatus(t *testing.T) {
	retryable := []int{429, 500, 502, 503, 504}
	for _, code := range retryable {
		if !isRetryableStatus(code) {
			t.Errorf("isRetryableStatus(%d) = false, want true", code)
		}
	}
	permanent := []int{200, 301, 400, 401, 403, 404}
	for _, code := range permanent {
		if isRetryableStatus(code) {
			t.Errorf("isRetryableStatus(%d) = true, want false", code)
		}
	}
}

func TestExtractTextFallback(t *testing.T) {
	raw := `<html><head><title>Backend Engineer</title>
<script>var x = 1;</script><style>body{}</style></head>
<body><h1>About the role</h1><p>Build services in Go.</p></body></html>`

	title, content := extractTextFallback(raw)
	if title != "Backend Engineer" {
		t.Errorf("title = %q, want %q", title, "Backend Engineer")
	}
	if !strings.Contains(content, "Build services in Go.") {
		t.Errorf("content missing body text: %q", content)
	}
	if strings.Contains(content, "var x") {
		t.Errorf("content leaked script text: %q", content)
	}
}

func TestCapContent(t *testing.T) {
	Init(Config{MaxContentChars: 10})
	if got := capContent("0123456789abcdef"); got != "0123456789..." {
		t.Errorf("got %q", got)
	}
	if got := capContent("short"); got != "short" {
		t.Errorf("got %q", got)
	}

	Init(Config{})
	if got := capContent("anything goes when uncapped"); got != "anything goes when uncapped" {
		t.Errorf("got %q", got)
	}
}
