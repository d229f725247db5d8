package ai

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
)

// ResponseCache is the storage used by CachedCompleter.
type ResponseCache interface {
	Key(parts ...string) string
	Get(key string, dest any) (bool, error)
	Set(key string, response any) error
}

// CachedCompleter serves identical requests from a local cache so re-running a
// generation on an unchanged repository does not hit the provider again.
type CachedCompleter struct {
	next  TextCompleter
	cache ResponseCache
}

func NewCachedCompleter(next TextCompleter, cache ResponseCache) *CachedCompleter {
	return &CachedCompleter{next: next, cache: cache}
}

func (c *CachedCompleter) Complete(ctx context.Context, doc models.PromptDocument, params models.ModelParams) (*models.Completion, error) {
	key := c.cache.Key(
		c.next.GetProviderName(),
		params.Model,
		fmt.Sprintf("%.3f/%.3f/%d", params.Temperature, params.TopP, params.MaxTokens),
		string(doc.Mode),
		doc.System,
		doc.User,
	)

	var cached models.Completion
	hit, err := c.cache.Get(key, &cached)
	if err != nil {
		logger.Debug(ctx, "completion cache read failed", "error", err)
	}
	if hit && cached.Text != "" {
		logger.Debug(ctx, "completion served from cache", "model", params.Model)
		cached.Cached = true
		return &cached, nil
	}

	completion, err := c.next.Complete(ctx, doc, params)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(key, completion); err != nil {
		logger.Debug(ctx, "completion cache write failed", "error", err)
	}
	return completion, nil
}

func (c *CachedCompleter) GetProviderName() string {
	return c.next.GetProviderName()
}
