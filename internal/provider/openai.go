package provider

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/pkg/openai"
)

// OpenAIProvider generates analysis via an OpenAI-compatible endpoint.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAI creates the hosted OpenAI provider. A nil client (no
// credential configured) makes the provider unavailable.
func NewOpenAI(client openai.Client, model string) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: model}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Available is a credential check only; no network round trip.
func (p *OpenAIProvider) Available(_ context.Context) bool {
	return p.client != nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) Result {
	temp := 0.3
	resp, err := p.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.Message{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: &temp,
	})
	if err != nil {
		zap.L().Warn("provider: openai generate failed", zap.Error(err))
		return Result{OK: false, Text: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return Result{OK: false, Text: "openai: empty choices"}
	}
	return Result{OK: true, Text: resp.Choices[0].Message.Content}
}
