package analyzer

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/provider"
)

// Analyzer orchestrates the provider path with the heuristic fallback.
// Provider availability is re-probed on every call; the zero-provider
// Analyzer runs pure heuristic analysis.
type Analyzer struct {
	providers []provider.Provider
}

// New creates an Analyzer that tries providers in the given priority order
// before falling back to the heuristic engine.
func New(providers ...provider.Provider) *Analyzer {
	return &Analyzer{providers: providers}
}

// AnalyzeText produces an insight report for page text and metadata. It
// never fails: provider unavailability, generation failure, unparseable
// output, and schema violations all degrade to the heuristic path.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, meta map[string]any) *model.InsightReport {
	if meta == nil {
		meta = map[string]any{}
	}

	p := provider.Select(ctx, a.providers)
	if p == nil {
		zap.L().Debug("analyzer: no provider available, using heuristic path")
		return HeuristicReport(text, meta)
	}

	prompt := BuildPrompt(text, meta)
	result := p.Generate(ctx, prompt)
	if !result.OK {
		zap.L().Info("analyzer: provider generation failed, falling back to heuristic",
			zap.String("provider", p.Name()),
		)
		return HeuristicReport(text, meta)
	}

	report, ok := ParseReport(result.Text)
	if !ok {
		zap.L().Info("analyzer: provider response not parseable, falling back to heuristic",
			zap.String("provider", p.Name()),
		)
		return HeuristicReport(text, meta)
	}

	if err := validateProviderReport(report); err != nil {
		zap.L().Info("analyzer: provider report failed validation, falling back to heuristic",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
		return HeuristicReport(text, meta)
	}

	report.Normalize()
	zap.L().Debug("analyzer: provider report accepted", zap.String("provider", p.Name()))
	return report
}

// AnalyzeContent analyzes scraped site content.
func (a *Analyzer) AnalyzeContent(ctx context.Context, content *model.SiteContent) *model.InsightReport {
	if content == nil {
		return a.AnalyzeText(ctx, "", nil)
	}
	return a.AnalyzeText(ctx, content.Text, content.Meta)
}
