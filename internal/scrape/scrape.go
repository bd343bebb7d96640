// Package scrape fetches a business website and extracts the visible text
// and metadata the analyzer consumes. Fetching is total: network errors,
// robots denials, and HTTP failures yield empty SiteContent, never an
// error, so analysis always runs to completion.
package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/insight-cli/internal/model"
)

const (
	userAgent   = "Mozilla/5.0 (compatible; InsightBot/1.0)"
	maxBodySize = 2 << 20 // 2 MiB per page
)

// Options configures the scraper.
type Options struct {
	Timeout  time.Duration
	MaxPages int // pages to aggregate per site; minimum 1
}

// Scraper fetches pages with a robots.txt gate and a shared HTTP client.
type Scraper struct {
	client   *http.Client
	robots   *robotsCache
	maxPages int
}

// New creates a Scraper with sensible defaults.
func New(opts Options) *Scraper {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	maxPages := opts.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 10 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
	return &Scraper{
		client:   client,
		robots:   newRobotsCache(client, userAgent),
		maxPages: maxPages,
	}
}

var schemeRe = regexp.MustCompile(`^https?://`)

// NormalizeURL prepends a scheme when the input lacks one.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !schemeRe.MatchString(raw) {
		return "https://" + raw
	}
	return raw
}

// Fetch retrieves a single page and extracts its content. On any failure
// it returns SiteContent with empty text and the URL set.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) *model.SiteContent {
	target := NormalizeURL(rawURL)
	empty := &model.SiteContent{URL: target, Text: "", Meta: map[string]any{}, Links: []string{}}

	if !s.robots.Allowed(ctx, target) {
		zap.L().Info("scrape: disallowed by robots.txt", zap.String("url", target))
		return empty
	}

	body, ok := s.fetchHTML(ctx, target)
	if !ok {
		return empty
	}

	return ExtractContent(body, target)
}

// FetchSite retrieves the main page and, when MaxPages > 1, aggregates the
// text of up to MaxPages-1 internal links. Metadata and links always come
// from the main page; aggregation is a thin concatenation loop.
func (s *Scraper) FetchSite(ctx context.Context, rawURL string) *model.SiteContent {
	content := s.Fetch(ctx, rawURL)
	if s.maxPages <= 1 || len(content.Links) == 0 || content.Text == "" {
		return content
	}

	base, err := url.Parse(content.URL)
	if err != nil {
		return content
	}

	// Same-host links only, deduplicated, in document order.
	seen := map[string]bool{content.URL: true}
	var internal []string
	for _, link := range content.Links {
		u, err := url.Parse(link)
		if err != nil || u.Host != base.Host {
			continue
		}
		if seen[link] {
			continue
		}
		seen[link] = true
		internal = append(internal, link)
		if len(internal) >= s.maxPages-1 {
			break
		}
	}

	// One slot per link keeps aggregation order deterministic.
	texts := make([]string, len(internal))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, link := range internal {
		g.Go(func() error {
			if !s.robots.Allowed(gCtx, link) {
				return nil
			}
			body, ok := s.fetchHTML(gCtx, link)
			if !ok {
				return nil
			}
			sub := ExtractContent(body, link)
			texts[i] = sub.Text
			return nil
		})
	}
	_ = g.Wait()

	parts := []string{content.Text}
	for _, t := range texts {
		if t != "" {
			parts = append(parts, t)
		}
	}
	content.Text = strings.Join(parts, "\n")
	return content
}

// fetchHTML performs the HTTP GET. The bool is false on any failure.
func (s *Scraper) fetchHTML(ctx context.Context, target string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		zap.L().Debug("scrape: create request failed", zap.String("url", target), zap.Error(err))
		return nil, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Debug("scrape: fetch failed", zap.String("url", target), zap.Error(err))
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		zap.L().Debug("scrape: unexpected status", zap.String("url", target), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil || len(body) == 0 {
		return nil, false
	}
	return body, true
}
