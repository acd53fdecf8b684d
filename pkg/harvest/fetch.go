package harvest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxBodySize caps fetched HTML so an untrusted URL cannot exhaust memory.
const maxBodySize = 10 * 1024 * 1024

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// Article is the readable content extracted from a web page.
type Article struct {
	Title    string
	Byline   string
	SiteName string
	Text     string
}

// FetchArticle downloads a page and extracts its readable text. Ruby
// annotations are stripped before extraction.
func FetchArticle(ctx context.Context, rawURL string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	// Mimic a real browser; several Japanese news sites block default
	// Go user agents outright.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ja;q=0.8")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}
	if resp.ContentLength > maxBodySize {
		return nil, fmt.Errorf("fetching %s: content length %d exceeds %d byte limit", rawURL, resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if len(body) >= maxBodySize {
		return nil, fmt.Errorf("fetching %s: body exceeds %d byte limit", rawURL, maxBodySize)
	}

	body = SanitizeRuby(body)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extracting article from %s: %w", rawURL, err)
	}

	return &Article{
		Title:    article.Title,
		Byline:   article.Byline,
		SiteName: article.SiteName,
		Text:     article.TextContent,
	}, nil
}
