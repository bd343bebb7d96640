package scrape

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
)

// robotsCache fetches and caches robots.txt groups per host for the
// lifetime of the scraper. An unreachable or unparseable robots.txt
// defaults to allow.
type robotsCache struct {
	client    *http.Client
	userAgent string

	mu     sync.Mutex
	groups map[string]*robotstxt.Group // keyed by host; nil entry means allow-all
}

func newRobotsCache(client *http.Client, userAgent string) *robotsCache {
	return &robotsCache{
		client:    client,
		userAgent: userAgent,
		groups:    make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether the target URL may be fetched.
func (rc *robotsCache) Allowed(ctx context.Context, target string) bool {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return true
	}

	rc.mu.Lock()
	group, cached := rc.groups[u.Host]
	rc.mu.Unlock()

	if !cached {
		group = rc.fetchGroup(ctx, u)
		rc.mu.Lock()
		rc.groups[u.Host] = group
		rc.mu.Unlock()
	}

	if group == nil {
		return true
	}
	return group.Test(u.Path)
}

// fetchGroup downloads robots.txt for the URL's host. Returns nil (allow)
// on any failure.
func (rc *robotsCache) fetchGroup(ctx context.Context, u *url.URL) *robotstxt.Group {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.client.Do(req)
	if err != nil {
		zap.L().Debug("scrape: robots.txt fetch failed", zap.String("host", u.Host), zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil
	}

	robots, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		zap.L().Debug("scrape: robots.txt parse failed", zap.String("host", u.Host), zap.Error(err))
		return nil
	}
	return robots.FindGroup(rc.userAgent)
}
