package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matereadme/internal/models"
	"google.golang.org/genai"
)

func TestExtractUsage(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Nil(t, extractUsage(nil))
	})

	t.Run("nil UsageMetadata", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{}
		assert.Nil(t, extractUsage(resp))
	})

	t.Run("valid UsageMetadata", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount:     10,
				CandidatesTokenCount: 20,
				TotalTokenCount:      30,
			},
		}
		usage := extractUsage(resp)
		assert.NotNil(t, usage)
		assert.Equal(t, 10, usage.InputTokens)
		assert.Equal(t, 20, usage.OutputTokens)
		assert.Equal(t, 30, usage.TotalTokens)
	})
}

func TestGetGenerateConfig(t *testing.T) {
	t.Run("maps model parameters", func(t *testing.T) {
		cfg := GetGenerateConfig("be helpful", models.ModelParams{Temperature: 0.6, TopP: 0.9, MaxTokens: 4000})

		require.NotNil(t, cfg)
		assert.Equal(t, float32(0.6), *cfg.Temperature)
		assert.Equal(t, float32(0.9), *cfg.TopP)
		assert.Equal(t, int32(4000), cfg.MaxOutputTokens)
		require.NotNil(t, cfg.SystemInstruction)
		assert.Equal(t, "be helpful", cfg.SystemInstruction.Parts[0].Text)
	})

	t.Run("omits empty system instruction", func(t *testing.T) {
		cfg := GetGenerateConfig("", models.ModelParams{})

		assert.Nil(t, cfg.SystemInstruction)
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("skips thought parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "reasoning", Thought: true},
					{Text: "# Title"},
					{Text: "\n\nBody"},
				}},
			}},
		}

		assert.Equal(t, "# Title\n\nBody", formatResponse(resp))
	})

	t.Run("empty candidates", func(t *testing.T) {
		assert.Empty(t, formatResponse(&genai.GenerateContentResponse{}))
		assert.Empty(t, formatResponse(nil))
	})
}
