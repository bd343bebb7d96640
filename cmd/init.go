package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/analyzer"
	"github.com/sells-group/insight-cli/internal/config"
	"github.com/sells-group/insight-cli/internal/provider"
	"github.com/sells-group/insight-cli/internal/scrape"
	"github.com/sells-group/insight-cli/pkg/anthropic"
	"github.com/sells-group/insight-cli/pkg/ollama"
	"github.com/sells-group/insight-cli/pkg/openai"
)

// buildAnalyzer wires the configured providers in priority order. Providers
// without credentials are skipped; Ollama is always registered since its
// availability is probed per request.
func buildAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	var providers []provider.Provider

	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		providers = append(providers, provider.NewAnthropic(client, cfg.Anthropic.Model))
	}
	if cfg.OpenAI.Key != "" {
		client := openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model),
		)
		providers = append(providers, provider.NewOpenAI(client, cfg.OpenAI.Model))
	}
	providers = append(providers, provider.NewOllama(
		ollama.NewClient(ollama.WithBaseURL(cfg.Ollama.BaseURL)),
		cfg.Ollama.Model,
	))

	zap.L().Debug("providers wired", zap.Int("count", len(providers)))
	return analyzer.New(providers...)
}

func buildScraper(cfg *config.Config, maxPages int) *scrape.Scraper {
	if maxPages < 1 {
		maxPages = cfg.Scrape.MaxPages
	}
	return scrape.New(scrape.Options{
		Timeout:  time.Duration(cfg.Scrape.TimeoutSecs) * time.Second,
		MaxPages: maxPages,
	})
}
