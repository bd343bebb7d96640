// Package server exposes the analyzer over HTTP: a small browser UI plus
// JSON endpoints for programmatic access.
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/analyzer"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/scrape"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	serviceName    = "insight-cli"
	serviceVersion = "1.0.0"
)

// Server handles the web UI and API routes.
type Server struct {
	analyzer *analyzer.Analyzer
	scraper  *scrape.Scraper
	limiter  *ipLimiter
	tmpl     *template.Template
}

// New builds a Server with a per-IP rate limit of ratePerMinute requests
// on the analysis endpoints.
func New(a *analyzer.Analyzer, s *scrape.Scraper, ratePerMinute int) *Server {
	return &Server{
		analyzer: a,
		scraper:  s,
		limiter:  newIPLimiter(ratePerMinute),
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.handleIndex)
	r.Post("/analyze", s.handleAnalyzeForm)
	r.Get("/about", s.handleAbout)
	r.Get("/health", s.handleHealth)
	r.Get("/api/health", s.handleAPIHealth)
	r.Post("/api/analyze", s.handleAPIAnalyze)

	return r
}

// requestID tags every response with a fresh request ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		zap.L().Debug("server: request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

// indexData feeds the index template.
type indexData struct {
	Result *model.InsightReport
	Error  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, indexData{})
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		s.renderIndex(w, indexData{Error: "Rate limit exceeded. Please wait a minute before trying again."})
		return
	}

	if err := r.ParseForm(); err != nil {
		s.renderIndex(w, indexData{Error: "Invalid form submission."})
		return
	}

	url := strings.TrimSpace(r.FormValue("url"))
	description := strings.TrimSpace(r.FormValue("description"))
	if url == "" && description == "" {
		s.renderIndex(w, indexData{Error: "Please provide a URL or a description."})
		return
	}

	report := s.analyze(r, url, description)
	s.renderIndex(w, indexData{Result: report})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "about.html", nil); err != nil {
		zap.L().Error("server: render about", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}

func (s *Server) handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": float64(time.Now().UnixNano()) / float64(time.Second),
	})
}

func (s *Server) handleAPIAnalyze(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		return
	}

	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	url := strings.TrimSpace(req.URL)
	description := strings.TrimSpace(req.Description)
	if url == "" && description == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "url or description is required"})
		return
	}

	report := s.analyze(r, url, description)
	writeJSON(w, http.StatusOK, report)
}

// analyze runs the URL path when a URL was given, otherwise analyzes the
// free-text description directly.
func (s *Server) analyze(r *http.Request, url, description string) *model.InsightReport {
	if url != "" {
		content := s.scraper.FetchSite(r.Context(), url)
		return s.analyzer.AnalyzeContent(r.Context(), content)
	}
	return s.analyzer.AnalyzeText(r.Context(), description, map[string]any{})
}

func (s *Server) renderIndex(w http.ResponseWriter, data indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		zap.L().Error("server: render index", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}
