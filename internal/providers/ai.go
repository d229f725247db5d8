package providers

import (
	"context"

	"github.com/thomas-vilte/matereadme/internal/ai"
	"github.com/thomas-vilte/matereadme/internal/ai/gemini"
	"github.com/thomas-vilte/matereadme/internal/ai/openai"
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
)

// NewTextCompleter creates a TextCompleter based on the configured provider
func NewTextCompleter(ctx context.Context, cfg *config.Config) (ai.TextCompleter, error) {
	if cfg.AIConfig.ActiveAI == "" {
		return nil, domainErrors.ErrProviderNotSupported.WithContext("provider", "")
	}

	provider, providerCfg := cfg.ActiveProvider()

	switch provider {
	case config.AIGemini:
		completer, err := gemini.NewGeminiCompleter(ctx, providerCfg, cfg.HTTPTimeout())
		if err != nil {
			return nil, err
		}
		return completer, nil
	case config.AIGroq, config.AIOpenAI:
		completer, err := openai.NewChatCompleter(provider, providerCfg, cfg.HTTPTimeout())
		if err != nil {
			return nil, err
		}
		return completer, nil
	default:
		return nil, domainErrors.ErrProviderNotSupported.WithContext("provider", string(provider))
	}
}
