package gemini

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/thomas-vilte/matereadme/internal/ai"
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"google.golang.org/genai"
)

var _ ai.TextCompleter = (*GeminiCompleter)(nil)

// ContentGenerator is the subset of genai.Models used by the completer.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiCompleter struct {
	models ContentGenerator
}

func NewGeminiCompleter(ctx context.Context, providerCfg config.AIProviderConfig, timeout time.Duration) (*GeminiCompleter, error) {
	if providerCfg.APIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", string(config.AIGemini))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     providerCfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unauthorized") ||
			strings.Contains(errMsg, "api key") ||
			strings.Contains(errMsg, "authentication") {
			return nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}

	return NewGeminiCompleterWithGenerator(client.Models), nil
}

func NewGeminiCompleterWithGenerator(generator ContentGenerator) *GeminiCompleter {
	return &GeminiCompleter{models: generator}
}

func (g *GeminiCompleter) GetProviderName() string {
	return string(config.AIGemini)
}

func (g *GeminiCompleter) Complete(ctx context.Context, doc models.PromptDocument, params models.ModelParams) (*models.Completion, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug("calling gemini API",
		"model", params.Model,
		"mode", doc.Mode,
		"prompt_length", len(doc.User))

	resp, err := g.models.GenerateContent(ctx, params.Model, genai.Text(doc.User), GetGenerateConfig(doc.System, params))
	if err != nil {
		log.Error("gemini API call failed",
			"error", err,
			"model", params.Model)

		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "quota") ||
			strings.Contains(errMsg, "rate limit") ||
			strings.Contains(errMsg, "resource exhausted") {
			return nil, domainErrors.ErrQuotaExceeded.WithError(err)
		}

		if strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unauthorized") ||
			strings.Contains(errMsg, "api key") {
			return nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}

		return nil, domainErrors.ErrAIGeneration.WithError(err)
	}

	usage := extractUsage(resp)
	if usage != nil {
		usage.Model = params.Model
		usage.DurationMs = time.Since(start).Milliseconds()
	}

	text := formatResponse(resp)
	log.Debug("gemini response received",
		"length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return &models.Completion{Text: text, Usage: usage}, nil
}
