package factory

import (
	"context"
	"path/filepath"

	"github.com/thomas-vilte/matereadme/internal/ai"
	"github.com/thomas-vilte/matereadme/internal/cache"

	"github.com/thomas-vilte/matereadme/internal/commands/analyze"
	"github.com/thomas-vilte/matereadme/internal/commands/generate"
	"github.com/thomas-vilte/matereadme/internal/commands/repos"
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/providers"
	"github.com/thomas-vilte/matereadme/internal/services"
)

// ReadmeServiceFactory builds the README service for each command. Clients are
// created on demand so commands that only read GitHub never need an AI key.
type ReadmeServiceFactory struct {
	config *config.Config
}

func NewReadmeServiceFactory(cfg *config.Config) *ReadmeServiceFactory {
	return &ReadmeServiceFactory{config: cfg}
}

func (f *ReadmeServiceFactory) CreateReadmeService(ctx context.Context, progress func(models.ProgressEvent)) (generate.ReadmeService, error) {
	vcsClient, err := providers.NewVCSClient(f.config)
	if err != nil {
		return nil, err
	}

	completer, err := providers.NewTextCompleter(ctx, f.config)
	if err != nil {
		return nil, err
	}

	if ttl := f.config.CacheTTL(); ttl > 0 && f.config.PathFile != "" {
		responseCache, err := cache.NewCache(filepath.Join(f.config.Dir(), "cache"), ttl)
		if err != nil {
			logger.Warn(ctx, "completion cache disabled", "error", err)
		} else {
			completer = ai.NewCachedCompleter(completer, responseCache)
		}
	}

	logger.Debug(ctx, "readme service created",
		"provider", completer.GetProviderName(),
		"max_files", f.config.Analysis.MaxFiles)

	return services.NewReadmeService(
		services.WithVCSClient(vcsClient),
		services.WithTextCompleter(completer),
		services.WithReadmeConfig(f.config),
		services.WithProgressHandler(progress),
	), nil
}

func (f *ReadmeServiceFactory) CreateAnalyzer(_ context.Context) (analyze.Analyzer, error) {
	vcsClient, err := providers.NewVCSClient(f.config)
	if err != nil {
		return nil, err
	}

	return services.NewReadmeService(
		services.WithVCSClient(vcsClient),
		services.WithReadmeConfig(f.config),
	), nil
}

func (f *ReadmeServiceFactory) CreateRepositoryLister(_ context.Context) (repos.RepositoryLister, error) {
	vcsClient, err := providers.NewVCSClient(f.config)
	if err != nil {
		return nil, err
	}

	return services.NewReadmeService(
		services.WithVCSClient(vcsClient),
		services.WithReadmeConfig(f.config),
	), nil
}
