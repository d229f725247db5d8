package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
)

func TestNewTextCompleter_TypedNilCheck(t *testing.T) {
	for _, ai := range []config.AI{config.AIGemini, config.AIGroq, config.AIOpenAI} {
		t.Run(string(ai), func(t *testing.T) {
			cfg := config.DefaultConfig("")
			cfg.AIConfig.ActiveAI = ai

			completer, err := NewTextCompleter(context.Background(), cfg)

			assert.True(t, errors.Is(err, domainErrors.ErrAPIKeyMissing))
			// Check if the interface itself is nil
			assert.True(t, completer == nil, "completer interface should be truly nil, not a typed nil")
		})
	}
}

func TestNewTextCompleter(t *testing.T) {
	t.Run("should build an OpenAI-compatible completer for groq", func(t *testing.T) {
		cfg := config.DefaultConfig("")
		cfg.AIConfig.ActiveAI = config.AIGroq
		cfg.AIProviders["groq"] = config.AIProviderConfig{APIKey: "gsk_test"}

		completer, err := NewTextCompleter(context.Background(), cfg)

		require.NoError(t, err)
		assert.Equal(t, "groq", completer.GetProviderName())
	})

	t.Run("should reject an unknown provider", func(t *testing.T) {
		cfg := config.DefaultConfig("")
		cfg.AIConfig.ActiveAI = "claude"

		_, err := NewTextCompleter(context.Background(), cfg)

		assert.True(t, errors.Is(err, domainErrors.ErrProviderNotSupported))
	})

	t.Run("should reject an empty provider", func(t *testing.T) {
		cfg := config.DefaultConfig("")
		cfg.AIConfig.ActiveAI = ""

		_, err := NewTextCompleter(context.Background(), cfg)

		assert.Error(t, err)
	})
}

func TestNewVCSClient(t *testing.T) {
	t.Run("should require a token", func(t *testing.T) {
		client, err := NewVCSClient(config.DefaultConfig(""))

		assert.True(t, errors.Is(err, domainErrors.ErrTokenMissing))
		assert.True(t, client == nil)
	})

	t.Run("should build a GitHub client", func(t *testing.T) {
		cfg := config.DefaultConfig("")
		cfg.GitHubToken = "ghp_test"

		client, err := NewVCSClient(cfg)

		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
