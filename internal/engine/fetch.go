package engine

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v5"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

var (
	fetchLimiter     *rate.Limiter
	fetchLimiterOnce sync.Once
)

// limiter returns the process-wide fetch rate limiter, built from config.
func limiter() *rate.Limiter {
	fetchLimiterOnce.Do(func() {
		rps := cfg.FetchPerSecond
		if rps <= 0 {
			rps = 2
		}
		burst := cfg.FetchBurst
		if burst <= 0 {
			burst = 4
		}
		fetchLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	})
	return fetchLimiter
}

// FetchJobPosting downloads a job posting URL and extracts its main text
// content. Used by the score_ats tool when the caller passes job_url
// instead of pasting the description. Extraction order: goquery content
// selection converted to markdown, then a tokenizer-based plain-text walk
// when the document cannot be parsed.
func FetchJobPosting(ctx context.Context, rawURL string) (title, content string, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	if err = limiter().Wait(ctx); err != nil {
		return "", "", err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	resp, err := fetchWithRetry(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return "", "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		title, content = extractTextFallback(string(body))
		return title, capContent(content), nil
	}

	title = doc.Find("title").First().Text()
	if title == "" {
		doc.Find("meta[property=og:title]").Each(func(i int, s *goquery.Selection) {
			if title == "" {
				title, _ = s.Attr("content")
			}
		})
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
		"[role=navigation]", "[role=banner]", "[role=contentinfo]",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, .job-description, .posting, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	if rawHTML, herr := goquery.OuterHtml(contentSel); herr == nil {
		if md, merr := htmltomarkdown.ConvertString(rawHTML); merr == nil {
			content = strings.TrimSpace(md)
		}
	}
	if content == "" {
		content = CollapseWhitespace(contentSel.Text())
	}

	return strings.TrimSpace(title), capContent(content), nil
}

// fetchWithRetry performs an HTTP GET with retry logic using exponential backoff.
func fetchWithRetry(ctx context.Context, fetchURL string) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		req.Header.Set("User-Agent", UserAgentBot)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept-Encoding", "gzip, deflate")

		resp, err := cfg.HTTPClient.Do(req)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if isRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(30*time.Second))
}

// isRetryableStatus returns true for HTTP status codes worth retrying.
func isRetryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(io.LimitReader(gz, 4*1024*1024))
	}
	return io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
}

// extractTextFallback walks raw HTML with the x/net/html tokenizer when
// goquery cannot build a document.
func extractTextFallback(rawHTML string) (title, content string) {
	z := html.NewTokenizer(strings.NewReader(rawHTML))
	var sb strings.Builder
	var inTitle, skip bool
	for {
		switch z.Next() {
		case html.ErrorToken:
			return title, CollapseWhitespace(sb.String())
		case html.StartTagToken:
			switch tok := z.Token(); tok.Data {
			case "title":
				inTitle = true
			case "script", "style", "noscript":
				skip = true
			}
		case html.EndTagToken:
			switch tok := z.Token(); tok.Data {
			case "title":
				inTitle = false
			case "script", "style", "noscript":
				skip = false
			}
		case html.TextToken:
			text := string(z.Text())
			if inTitle && title == "" {
				title = strings.TrimSpace(text)
			} else if !skip {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
		}
	}
}

// capContent truncates content to the configured maximum.
func capContent(s string) string {
	if cfg.MaxContentChars > 0 && len(s) > cfg.MaxContentChars {
		return s[:cfg.MaxContentChars] + "..."
	}
	return s
}
