package routing

import (
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/models"
)

type ModelSelector struct {
	provider   config.AIProviderConfig
	generation config.GenerationConfig
}

func NewModelSelector(provider config.AIProviderConfig, generation config.GenerationConfig) *ModelSelector {
	return &ModelSelector{
		provider:   provider,
		generation: generation,
	}
}

// Select returns the completion parameters for a prompt mode.
//
// Enhanced prompts already carry the analysis and pre-rendered artifacts, so
// they go to the enhanced model with the smaller output budget. Basic and
// custom prompts leave the whole README to the model and get the larger one.
func (m *ModelSelector) Select(mode models.PromptMode) models.ModelParams {
	params := models.ModelParams{
		Model:       m.provider.Model,
		Temperature: m.generation.Temperature,
		TopP:        m.generation.TopP,
		MaxTokens:   m.generation.MaxTokens,
	}

	if mode == models.PromptModeEnhanced {
		if m.provider.EnhancedModel != "" {
			params.Model = m.provider.EnhancedModel
		}
		params.MaxTokens = m.generation.EnhancedMaxTokens
	}

	return params
}

// GetRationale returns the translation key that explains why a model was chosen
func (m *ModelSelector) GetRationale(mode models.PromptMode) string {
	return Rationale(mode)
}

func Rationale(mode models.PromptMode) string {
	switch mode {
	case models.PromptModeEnhanced:
		return "routing.reason_enhanced"
	case models.PromptModeCustom:
		return "routing.reason_custom"
	default:
		return "routing.reason_default"
	}
}
