package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/insight-cli/internal/analyzer"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/scrape"
)

func newTestServer(ratePerMinute int) *Server {
	return New(analyzer.New(), scrape.New(scrape.Options{}), ratePerMinute)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(10)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "insight-cli", body["service"])
}

func TestAPIHealth(t *testing.T) {
	srv := newTestServer(10)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Greater(t, body["timestamp"].(float64), 0.0)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(10)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestAboutPage(t *testing.T) {
	srv := newTestServer(10)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Business Insight Analyzer")
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(10)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPIAnalyzeDescription(t *testing.T) {
	srv := newTestServer(10)
	payload, _ := json.Marshal(model.AnalysisRequest{
		Description: "We run a software platform with an API for enterprise clients.",
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report model.InsightReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Software / SaaS", report.Industry)
	require.NotNil(t, report.OverallBusinessScore)
	assert.GreaterOrEqual(t, *report.OverallBusinessScore, 1)
	assert.LessOrEqual(t, *report.OverallBusinessScore, 100)
}

func TestAPIAnalyzeMissingInput(t *testing.T) {
	srv := newTestServer(10)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{}`))
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "url or description is required")
}

func TestAPIAnalyzeInvalidBody(t *testing.T) {
	srv := newTestServer(10)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("not json"))
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIAnalyzeURL(t *testing.T) {
	page := `<html><head><title>Acme Clinic</title>
<meta name="description" content="Trusted health care for families"></head>
<body><h1>Acme Clinic</h1><p>Health services and patient care.</p></body></html>`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer upstream.Close()

	srv := newTestServer(10)
	payload, _ := json.Marshal(model.AnalysisRequest{URL: upstream.URL})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report model.InsightReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Healthcare", report.Industry)
}

func TestAnalyzeFormRendersResult(t *testing.T) {
	srv := newTestServer(10)

	form := url.Values{"description": {"An online shop with a cart for consumers."}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-commerce")
}

func TestAnalyzeFormMissingInput(t *testing.T) {
	srv := newTestServer(10)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide a URL or a description.")
}

func TestRateLimitExceeded(t *testing.T) {
	srv := newTestServer(2)
	router := srv.Router()

	payload := `{"description":"a small consulting firm"}`
	var lastCode int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
		req.RemoteAddr = "10.0.0.9:1234"
		router.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimitPerIP(t *testing.T) {
	limiter := newIPLimiter(1)

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))
	// A different client is unaffected.
	assert.True(t, limiter.Allow("2.2.2.2"))
}

func TestClientIPForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestClientIPRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.4:5555"

	assert.Equal(t, "192.0.2.4", clientIP(req))
}
