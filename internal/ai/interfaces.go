package ai

import (
	"context"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// TextCompleter is a single-shot, non-streaming completion service.
type TextCompleter interface {
	// Complete sends the system and user prompt of doc with the given model
	// parameters and returns the raw generated text.
	Complete(ctx context.Context, doc models.PromptDocument, params models.ModelParams) (*models.Completion, error)

	// GetProviderName returns the name of the provider (e.g.: "gemini", "groq")
	GetProviderName() string
}
