package openai

import (
	"github.com/poiesic/assessrec/ai"
)

// Provider implements ai.AIProvider for OpenAI-compatible services.
type Provider struct {
	embedder *Embedder
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider creates a provider whose services share the given configuration.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	return &Provider{embedder: embedder}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close releases resources held by the provider.
// The underlying HTTP client needs no explicit shutdown.
func (p *Provider) Close() error {
	return nil
}
