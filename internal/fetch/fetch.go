// Package fetch retrieves job descriptions from URLs and reduces the page
// HTML to plain readable text for the keyword extractor.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds one HTTP fetch.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the fetcher to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; ResumeOptimizer/1.0)"

// Error reports a failed job description fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetching.
type Options struct {
	Timeout time.Duration
	// UseBrowser enables the headless-browser fallback for pages that
	// render their content with JavaScript.
	UseBrowser bool
}

// JobDescription fetches a job posting URL and returns its readable text.
// When the plain HTTP fetch yields too little text and the browser fallback
// is enabled, the page is re-rendered headlessly before extraction.
func JobDescription(ctx context.Context, rawURL string, opts Options) (string, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	html, err := fetchHTML(ctx, rawURL, opts.Timeout)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to extract text", Cause: err}
	}

	if opts.UseBrowser && tooShort(text) {
		rendered, berr := renderWithBrowser(ctx, rawURL, opts.Timeout)
		if berr != nil {
			return "", &Error{URL: rawURL, Message: "browser rendering failed", Cause: berr}
		}
		if text, err = ExtractText(rendered); err != nil {
			return "", &Error{URL: rawURL, Message: "failed to extract rendered text", Cause: err}
		}
	}

	return text, nil
}

func fetchHTML(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// contentSelectors are tried in order: job-board specific containers first,
// generic page containers after, body as the last resort.
var contentSelectors = []string{
	".job-description", "#job-description", ".job-content", "#job-content",
	".description", "main", "article", ".content", "#content",
}

// ExtractText parses HTML and returns the readable text of its main content
// area with navigation, script, and boilerplate elements removed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	content := doc.Find("body")
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	return cleanWhitespace(content.Text()), nil
}

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(multiNewline.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
