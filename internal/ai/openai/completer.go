package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/thomas-vilte/matereadme/internal/ai"
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
)

var _ ai.TextCompleter = (*ChatCompleter)(nil)

// ChatClient is the subset of *openai.Client used by the completer.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatCompleter talks to any OpenAI-compatible chat completion endpoint
// (OpenAI itself, Groq).
type ChatCompleter struct {
	client   ChatClient
	provider string
}

func NewChatCompleter(provider config.AI, providerCfg config.AIProviderConfig, timeout time.Duration) (*ChatCompleter, error) {
	if providerCfg.APIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", string(provider))
	}

	cfg := openai.DefaultConfig(providerCfg.APIKey)
	if providerCfg.BaseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(providerCfg.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return NewChatCompleterWithClient(string(provider), openai.NewClientWithConfig(cfg)), nil
}

func NewChatCompleterWithClient(provider string, client ChatClient) *ChatCompleter {
	return &ChatCompleter{client: client, provider: provider}
}

func (c *ChatCompleter) GetProviderName() string {
	return c.provider
}

func (c *ChatCompleter) Complete(ctx context.Context, doc models.PromptDocument, params models.ModelParams) (*models.Completion, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug("calling chat completion API",
		"provider", c.provider,
		"model", params.Model,
		"mode", doc.Mode,
		"prompt_length", len(doc.User))

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if doc.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: doc.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: doc.User})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       params.Model,
		Messages:    messages,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		log.Error("chat completion API call failed",
			"provider", c.provider,
			"error", err,
			"model", params.Model)
		return nil, mapError(err).WithContext("provider", c.provider)
	}

	if len(resp.Choices) == 0 {
		return nil, domainErrors.ErrInvalidAIOutput.WithContext("provider", c.provider)
	}

	usage := &models.TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
		Model:        params.Model,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if resp.Model != "" {
		usage.Model = resp.Model
	}

	text := resp.Choices[0].Message.Content
	log.Debug("chat completion received",
		"provider", c.provider,
		"length", len(text),
		"finish_reason", resp.Choices[0].FinishReason,
		"duration_ms", usage.DurationMs)

	return &models.Completion{Text: text, Usage: usage}, nil
}

func mapError(err error) *domainErrors.AppError {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domainErrors.ErrOpenAIAPIKeyInvalid.WithError(err)
	case http.StatusTooManyRequests:
		return domainErrors.ErrQuotaExceeded.WithError(err)
	default:
		return domainErrors.ErrAIGeneration.WithError(err)
	}
}
