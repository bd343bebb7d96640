package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageHandler(pages map[string]string, robots string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			if robots == "" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(robots))
			return
		}
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	})
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(pageHandler(map[string]string{
		"/": `<html><head><title>Acme</title></head><body><p>Hello widgets</p></body></html>`,
	}, ""))
	defer srv.Close()

	s := New(Options{})
	content := s.Fetch(context.Background(), srv.URL)

	assert.Equal(t, srv.URL, content.URL)
	assert.Contains(t, content.Text, "Hello widgets")
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	srv := httptest.NewServer(pageHandler(map[string]string{
		"/": `<html><body><p>secret</p></body></html>`,
	}, "User-agent: *\nDisallow: /\n"))
	defer srv.Close()

	s := New(Options{})
	content := s.Fetch(context.Background(), srv.URL)

	assert.Empty(t, content.Text)
	assert.NotNil(t, content.Meta)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(Options{})
	content := s.Fetch(context.Background(), srv.URL)

	assert.Empty(t, content.Text)
}

func TestFetch_Unreachable(t *testing.T) {
	s := New(Options{})
	content := s.Fetch(context.Background(), "http://127.0.0.1:1/")

	assert.Empty(t, content.Text)
	assert.NotNil(t, content.Links)
}

func TestFetchSite_AggregatesInternalPages(t *testing.T) {
	srv := httptest.NewServer(pageHandler(map[string]string{
		"/": `<html><body><p>main page</p>` +
			`<a href="/a">A</a><a href="/a">A again</a><a href="/b">B</a>` +
			`<a href="https://elsewhere.example/x">external</a></body></html>`,
		"/a": `<html><body><p>alpha content</p></body></html>`,
		"/b": `<html><body><p>bravo content</p></body></html>`,
	}, ""))
	defer srv.Close()

	s := New(Options{MaxPages: 3})
	content := s.FetchSite(context.Background(), srv.URL)

	assert.Contains(t, content.Text, "main page")
	assert.Contains(t, content.Text, "alpha content")
	assert.Contains(t, content.Text, "bravo content")
	assert.NotContains(t, content.Text, "external")
}

func TestFetchSite_SinglePage(t *testing.T) {
	srv := httptest.NewServer(pageHandler(map[string]string{
		"/":  `<html><body><p>main</p><a href="/a">A</a></body></html>`,
		"/a": `<html><body><p>sub page text</p></body></html>`,
	}, ""))
	defer srv.Close()

	s := New(Options{MaxPages: 1})
	content := s.FetchSite(context.Background(), srv.URL)

	assert.Contains(t, content.Text, "main")
	assert.NotContains(t, content.Text, "sub page text")
}

func TestRobotsCache_AllowsOnMissingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rc := newRobotsCache(srv.Client(), userAgent)
	assert.True(t, rc.Allowed(context.Background(), srv.URL+"/anything"))
}

func TestRobotsCache_DisallowsPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rc := newRobotsCache(srv.Client(), userAgent)
	assert.False(t, rc.Allowed(context.Background(), srv.URL+"/private/page"))
	assert.True(t, rc.Allowed(context.Background(), srv.URL+"/public"))
}

func TestRobotsCache_BadURL(t *testing.T) {
	rc := newRobotsCache(http.DefaultClient, userAgent)
	assert.True(t, rc.Allowed(context.Background(), "not a url"))
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{})
	require.NotNil(t, s)
	assert.Equal(t, 1, s.maxPages)
}
