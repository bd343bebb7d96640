// Package provider abstracts the text-generation backends used for
// analysis. Implementations never return Go errors from Generate: failure
// is encoded in Result.OK so the caller can fall through to the next
// backend without special cases.
package provider

import (
	"context"

	"go.uber.org/zap"
)

// Result carries a provider reply. OK is false on any failure (network,
// timeout, non-2xx); Text then holds a diagnostic, not model output.
type Result struct {
	OK   bool
	Text string
}

// Provider is a pluggable generation backend.
type Provider interface {
	Name() string
	// Available reports whether the provider can be used right now. It is
	// re-evaluated on every analysis request, never cached across calls.
	Available(ctx context.Context) bool
	Generate(ctx context.Context, prompt string) Result
}

// Select probes providers in the given priority order and returns the
// first available one, or nil when none is usable.
func Select(ctx context.Context, providers []Provider) Provider {
	for _, p := range providers {
		if p.Available(ctx) {
			return p
		}
		zap.L().Debug("provider: unavailable, trying next", zap.String("provider", p.Name()))
	}
	return nil
}
