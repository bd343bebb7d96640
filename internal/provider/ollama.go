package provider

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/pkg/ollama"
)

// OllamaProvider generates analysis via a local Ollama server.
type OllamaProvider struct {
	client ollama.Client
	model  string
}

// NewOllama creates the local-model provider.
func NewOllama(client ollama.Client, model string) *OllamaProvider {
	return &OllamaProvider{client: client, model: model}
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Available probes the local server. The probe is re-run per request so a
// server stopping mid-session is tolerated.
func (p *OllamaProvider) Available(ctx context.Context) bool {
	if p.client == nil {
		return false
	}
	return p.client.Health(ctx)
}

func (p *OllamaProvider) Generate(ctx context.Context, prompt string) Result {
	resp, err := p.client.Generate(ctx, ollama.GenerateRequest{
		Model:   p.model,
		Prompt:  prompt,
		Stream:  false,
		Options: map[string]any{"temperature": 0.2},
	})
	if err != nil {
		zap.L().Warn("provider: ollama generate failed", zap.Error(err))
		return Result{OK: false, Text: err.Error()}
	}
	return Result{OK: true, Text: resp.Response}
}
