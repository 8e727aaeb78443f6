package caselaw

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"legal-advisor-be/pkg/store"

	"golang.org/x/net/html"
)

const (
	defaultBaseURL  = "https://indiankanoon.org"
	caseTitleLimit  = 80
	defaultMaxCases = 3
)

// Fetcher retrieves related case-law citations for a query. Implementations
// are best-effort: they return an empty slice instead of failing.
type Fetcher interface {
	Search(ctx context.Context, query string, maxResults int) []store.Case
}

// KanoonFetcher scrapes the Indian Kanoon search page. Case law is
// supplementary, so every failure path (request, status, parse) degrades to
// an empty result with a warn log, and the response body is released on
// every exit path.
type KanoonFetcher struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

var _ Fetcher = &KanoonFetcher{}

func NewKanoonFetcher(baseURL string, timeout time.Duration, logger *log.Logger) *KanoonFetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &KanoonFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (f *KanoonFetcher) Search(ctx context.Context, query string, maxResults int) []store.Case {
	if maxResults <= 0 {
		maxResults = defaultMaxCases
	}

	searchURL := f.baseURL + "/search/?formInput=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		f.logger.Printf("[WARN] caselaw request build failed: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", "legal-advisor-be/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Printf("[WARN] caselaw fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Printf("[WARN] caselaw fetch status %d", resp.StatusCode)
		return nil
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		f.logger.Printf("[WARN] caselaw parse failed: %v", err)
		return nil
	}

	cases := f.extractResults(doc, maxResults)
	f.logger.Printf("[CASELAW] %d cases found", len(cases))
	return cases
}

// extractResults walks the document for result-title anchors
// (div.result_title > a) and keeps the first maxResults of them.
func (f *KanoonFetcher) extractResults(doc *html.Node, maxResults int) []store.Case {
	var cases []store.Case

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(cases) >= maxResults {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "result_title") {
			if a := firstAnchor(n); a != nil {
				title := truncateRunes(strings.TrimSpace(nodeText(a)), caseTitleLimit)
				href := f.absoluteURL(attr(a, "href"))
				if title != "" && href != "" {
					cases = append(cases, store.Case{Title: title, URL: href})
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return cases
}

func (f *KanoonFetcher) absoluteURL(href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return f.baseURL + href
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func firstAnchor(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			return c
		}
		if found := firstAnchor(c); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
