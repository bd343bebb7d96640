package provider

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/pkg/anthropic"
)

const analysisSystemPrompt = "You are a business analysis assistant. Reply in concise JSON unless asked for prose."

// AnthropicProvider generates analysis via the Anthropic Messages API.
type AnthropicProvider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates the hosted Anthropic provider. A nil client (no
// credential configured) makes the provider unavailable.
func NewAnthropic(client anthropic.Client, model string) *AnthropicProvider {
	return &AnthropicProvider{
		client:    client,
		model:     model,
		maxTokens: 4096,
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Available is a credential check only; no network round trip.
func (p *AnthropicProvider) Available(_ context.Context) bool {
	return p.client != nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) Result {
	temp := 0.3
	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		System:      analysisSystemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		zap.L().Warn("provider: anthropic generate failed", zap.Error(err))
		return Result{OK: false, Text: err.Error()}
	}
	return Result{OK: true, Text: resp.Text()}
}
