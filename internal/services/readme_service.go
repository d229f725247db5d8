package services

import (
	"context"
	"strings"
	"time"

	"github.com/thomas-vilte/matereadme/internal/ai"
	"github.com/thomas-vilte/matereadme/internal/analysis"
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/personalization"
	"github.com/thomas-vilte/matereadme/internal/presentation"
	"github.com/thomas-vilte/matereadme/internal/services/routing"
	"github.com/thomas-vilte/matereadme/internal/vcs"
)

const (
	ReadmePath           = "README.md"
	DefaultCommitMessage = "docs: update README"
	DefaultListLimit     = 30
)

// repositoryAnalyzer defines the methods needed by ReadmeService from the analyzer.
type repositoryAnalyzer interface {
	Analyze(ctx context.Context, owner, repo string) (*models.RepositoryAnalysis, error)
}

type ReadmeService struct {
	reader    vcs.RepositoryReader
	lister    vcs.RepositoryLister
	publisher vcs.ReadmePublisher
	completer ai.TextCompleter
	analyzer  repositoryAnalyzer
	selector  *routing.ModelSelector
	config    *config.Config
	progress  func(models.ProgressEvent)
}

type ReadmeOption func(*ReadmeService)

// WithVCSClient wires every repository capability from a single client.
func WithVCSClient(client vcs.VCSClient) ReadmeOption {
	return func(s *ReadmeService) {
		s.reader = client
		s.lister = client
		s.publisher = client
	}
}

func WithRepositoryReader(reader vcs.RepositoryReader) ReadmeOption {
	return func(s *ReadmeService) {
		s.reader = reader
	}
}

func WithRepositoryLister(lister vcs.RepositoryLister) ReadmeOption {
	return func(s *ReadmeService) {
		s.lister = lister
	}
}

func WithReadmePublisher(publisher vcs.ReadmePublisher) ReadmeOption {
	return func(s *ReadmeService) {
		s.publisher = publisher
	}
}

func WithTextCompleter(completer ai.TextCompleter) ReadmeOption {
	return func(s *ReadmeService) {
		s.completer = completer
	}
}

func WithAnalyzer(analyzer repositoryAnalyzer) ReadmeOption {
	return func(s *ReadmeService) {
		s.analyzer = analyzer
	}
}

func WithReadmeConfig(cfg *config.Config) ReadmeOption {
	return func(s *ReadmeService) {
		s.config = cfg
	}
}

func WithProgressHandler(fn func(models.ProgressEvent)) ReadmeOption {
	return func(s *ReadmeService) {
		s.progress = fn
	}
}

// NewReadmeService builds the service. Without an explicit analyzer one is
// created over the repository reader using the analysis limits of the config.
func NewReadmeService(opts ...ReadmeOption) *ReadmeService {
	s := &ReadmeService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.config == nil {
		s.config = config.DefaultConfig("")
	}

	if s.analyzer == nil && s.reader != nil {
		s.analyzer = analysis.NewAnalyzer(s.reader,
			analysis.WithMaxFiles(s.config.Analysis.MaxFiles),
			analysis.WithMaxFileSize(s.config.Analysis.MaxFileSize),
			analysis.WithConcurrency(s.config.Analysis.Concurrency),
		)
	}

	if s.selector == nil {
		_, provider := s.config.ActiveProvider()
		s.selector = routing.NewModelSelector(provider, s.config.Generation)
	}

	return s
}

// GenerateForRepository fetches the metadata of ref and generates its README.
func (s *ReadmeService) GenerateForRepository(ctx context.Context, ref vcs.Reference, opts models.GenerateOptions) (*models.GenerationResult, error) {
	meta, err := s.fetchMetadata(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, *meta, opts)
}

// Generate produces a README for the repository described by meta.
//
// When enhanced analysis is requested but cannot complete, generation still
// proceeds in Basic or Custom mode and the result carries no analysis. Only a
// failure of the completion itself fails the call.
func (s *ReadmeService) Generate(ctx context.Context, meta models.RepositoryMetadata, opts models.GenerateOptions) (*models.GenerationResult, error) {
	ctx, requestID := logger.WithRequestID(ctx)
	ctx = logger.With(ctx, "repo", meta.FullName)
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Info("generating README",
		"enhanced", opts.UseEnhancedAnalysis,
		"has_custom_instruction", strings.TrimSpace(opts.CustomInstruction) != "")

	if s.completer == nil {
		log.Error("AI service not configured")
		return nil, domainErrors.ErrAPIKeyMissing
	}

	var repoAnalysis *models.RepositoryAnalysis
	if opts.UseEnhancedAnalysis {
		repoAnalysis = s.tryAnalyze(ctx, meta)
	}

	mode := ai.SelectMode(opts.UseEnhancedAnalysis, repoAnalysis != nil, opts.CustomInstruction)

	pc := personalization.Derive(meta, repoAnalysis)
	artifacts := presentation.Synthesize(meta, repoAnalysis)

	language := opts.Language
	if language == "" {
		language = s.config.Language
	}

	doc, err := ai.Assemble(mode, ai.AssembleInput{
		Metadata:          meta,
		Analysis:          repoAnalysis,
		Personalization:   pc,
		Presentation:      artifacts,
		CustomInstruction: opts.CustomInstruction,
		Language:          language,
	})
	if err != nil {
		log.Error("failed to assemble prompt",
			"mode", mode,
			"error", err)
		return nil, domainErrors.ErrGenerationFailed.WithError(err).WithContext("repo", meta.FullName)
	}

	params := s.selector.Select(mode)
	log.Debug("prompt assembled",
		"mode", mode,
		"model", params.Model,
		"max_tokens", params.MaxTokens,
		"prompt_length", len(doc.User))

	s.notify(models.ProgressEvent{Stage: models.ProgressGenerating, Mode: mode})

	completion, err := s.completer.Complete(ctx, doc, params)
	if err != nil {
		log.Error("completion failed",
			"mode", mode,
			"error", err)
		return nil, domainErrors.ErrGenerationFailed.WithError(err).WithContext("repo", meta.FullName)
	}

	content, err := ai.CleanCompletion(completion.Text)
	if err != nil {
		log.Error("completion returned no usable content",
			"mode", mode,
			"error", err)
		return nil, domainErrors.ErrGenerationFailed.WithError(err).WithContext("repo", meta.FullName)
	}

	log.Info("README generated",
		"request_id", requestID,
		"mode", mode,
		"length", len(content),
		"duration_ms", time.Since(start).Milliseconds())

	return &models.GenerationResult{
		Content:         content,
		Mode:            mode,
		Analysis:        repoAnalysis,
		Personalization: &pc,
		Repository:      meta.Summary(),
		Provider:        s.completer.GetProviderName(),
		Usage:           completion.Usage,
		Cached:          completion.Cached,
	}, nil
}

// tryAnalyze runs the analysis and swallows its failure so the caller can
// fall back to a prompt that does not need it.
func (s *ReadmeService) tryAnalyze(ctx context.Context, meta models.RepositoryMetadata) *models.RepositoryAnalysis {
	log := logger.FromContext(ctx)

	if s.analyzer == nil {
		log.Warn("enhanced analysis requested without a repository reader")
		s.notify(models.ProgressEvent{Stage: models.ProgressAnalysisFallback})
		return nil
	}

	s.notify(models.ProgressEvent{Stage: models.ProgressAnalyzing})

	result, err := s.analyzer.Analyze(ctx, meta.Owner, meta.Name)
	if err != nil {
		log.Warn("repository analysis failed, falling back to basic generation",
			"error", err)
		s.notify(models.ProgressEvent{Stage: models.ProgressAnalysisFallback, Err: err})
		return nil
	}
	return result
}

// Analyze runs the analysis alone and returns what an enhanced prompt would be built from.
func (s *ReadmeService) Analyze(ctx context.Context, ref vcs.Reference) (*models.AnalysisReport, error) {
	ctx, _ = logger.WithRequestID(ctx)
	log := logger.FromContext(ctx)

	meta, err := s.fetchMetadata(ctx, ref)
	if err != nil {
		return nil, err
	}

	if s.analyzer == nil {
		return nil, domainErrors.ErrAnalysisFailed.WithContext("repo", ref.String())
	}

	s.notify(models.ProgressEvent{Stage: models.ProgressAnalyzing})

	result, err := s.analyzer.Analyze(ctx, meta.Owner, meta.Name)
	if err != nil {
		log.Error("repository analysis failed",
			"repo", ref.String(),
			"error", err)
		return nil, domainErrors.ErrAnalysisFailed.WithError(err).WithContext("repo", ref.String())
	}

	return &models.AnalysisReport{
		Repository:      meta.Summary(),
		Analysis:        result,
		Personalization: personalization.Derive(*meta, result),
		Presentation:    presentation.Synthesize(*meta, result),
	}, nil
}

// ListRepositories returns up to limit repositories of the authenticated user.
func (s *ReadmeService) ListRepositories(ctx context.Context, limit int) ([]models.RepositoryMetadata, error) {
	if s.lister == nil {
		return nil, domainErrors.ErrTokenMissing
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	logger.Debug(ctx, "listing repositories", "limit", limit)

	return s.lister.ListRepositories(ctx, limit)
}

// PublishReadme commits content as README.md on the default branch of ref.
func (s *ReadmeService) PublishReadme(ctx context.Context, ref vcs.Reference, content, message string) (*models.PublishResult, error) {
	if s.publisher == nil {
		return nil, domainErrors.ErrTokenMissing
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultCommitMessage
	}

	logger.Info(ctx, "publishing README",
		"repo", ref.String(),
		"length", len(content))

	return s.publisher.PutFile(ctx, ref.Owner, ref.Repo, ReadmePath, content, message)
}

func (s *ReadmeService) fetchMetadata(ctx context.Context, ref vcs.Reference) (*models.RepositoryMetadata, error) {
	if s.reader == nil {
		return nil, domainErrors.ErrTokenMissing
	}

	s.notify(models.ProgressEvent{Stage: models.ProgressFetchingMetadata})

	meta, err := s.reader.GetRepository(ctx, ref.Owner, ref.Repo)
	if err != nil {
		logger.Error(ctx, "failed to fetch repository metadata", err,
			"repo", ref.String())
		return nil, err
	}
	return meta, nil
}

func (s *ReadmeService) notify(event models.ProgressEvent) {
	if s.progress != nil {
		s.progress(event)
	}
}
