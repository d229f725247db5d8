package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/thomas-vilte/matereadme/internal/dependency"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxFiles    = 20
	DefaultMaxFileSize = 100000
	DefaultConcurrency = 4
)

// RepositorySource is the read access the analyzer needs from the hosting service.
type RepositorySource interface {
	GetRecursiveTree(ctx context.Context, owner, repo string) (*models.RepositoryTree, error)
	GetFileContent(ctx context.Context, owner, repo, path string) (*string, error)
}

type Analyzer struct {
	source      RepositorySource
	manifests   *dependency.Registry
	classifier  *Classifier
	maxFiles    int
	maxFileSize int
	concurrency int
}

type Option func(*Analyzer)

// WithMaxFiles lowers the per-file budget. Values above DefaultMaxFiles are
// clamped to it.
func WithMaxFiles(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxFiles = min(n, DefaultMaxFiles)
		}
	}
}

func WithMaxFileSize(bytes int) Option {
	return func(a *Analyzer) {
		if bytes > 0 {
			a.maxFileSize = bytes
		}
	}
}

func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

func WithManifestRegistry(r *dependency.Registry) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.manifests = r
		}
	}
}

func NewAnalyzer(source RepositorySource, opts ...Option) *Analyzer {
	a := &Analyzer{
		source:      source,
		manifests:   dependency.NewRegistry(),
		maxFiles:    DefaultMaxFiles,
		maxFileSize: DefaultMaxFileSize,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.classifier = NewClassifier(a.manifests)
	return a
}

// Analyze fetches the tree of owner/repo, samples up to maxFiles candidate
// files and merges what it learns. Only a tree fetch failure is returned as
// an error; individual files that cannot be read are reported in Skipped.
func (a *Analyzer) Analyze(ctx context.Context, owner, repo string) (*models.RepositoryAnalysis, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	fullName := fmt.Sprintf("%s/%s", owner, repo)

	log.Info("analyzing repository", "repo", fullName)

	tree, err := a.source.GetRecursiveTree(ctx, owner, repo)
	if err != nil {
		log.Error("failed to fetch repository tree",
			"repo", fullName,
			"error", err)
		return nil, domainErrors.ErrFetchTree.WithError(err).WithContext("repo", fullName)
	}

	signals := DetectTreeSignals(tree.Entries, a.manifests)
	candidates, matched := SelectCandidates(tree.Entries, a.maxFiles)

	log.Debug("candidates selected",
		"tree_size", len(tree.Entries),
		"matched", matched,
		"candidates", len(candidates))

	results := a.inspect(ctx, owner, repo, candidates)

	analysis := Aggregate(signals, results)
	analysis.TreeSize = len(tree.Entries)
	analysis.Truncated = tree.Truncated

	log.Info("repository analyzed",
		"repo", fullName,
		"files", len(analysis.Files),
		"skipped", len(analysis.Skipped),
		"frameworks", len(analysis.Frameworks),
		"features", len(analysis.Features),
		"duration_ms", time.Since(start).Milliseconds())

	return analysis, nil
}

// inspect classifies candidates with bounded parallelism. Results keep the
// candidate order regardless of completion order.
func (a *Analyzer) inspect(ctx context.Context, owner, repo string, candidates []models.FileEntry) []models.FileResult {
	results := make([]models.FileResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, entry := range candidates {
		if reason := a.skipReason(entry); reason != "" {
			logger.Debug(ctx, "candidate skipped", "path", entry.Path, "reason", reason)
			results[i] = models.FileResult{Path: entry.Path, SkipReason: reason}
			continue
		}
		g.Go(func() error {
			results[i] = a.inspectFile(ctx, owner, repo, entry)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (a *Analyzer) skipReason(entry models.FileEntry) string {
	if entry.Kind != models.EntryFile {
		return fmt.Sprintf("not a file (%s)", entry.Kind)
	}
	if entry.Size == nil {
		return "size unknown"
	}
	if *entry.Size >= a.maxFileSize {
		return fmt.Sprintf("%s (%d bytes)", domainErrors.ErrFileTooLarge.Message, *entry.Size)
	}
	return ""
}

func (a *Analyzer) inspectFile(ctx context.Context, owner, repo string, entry models.FileEntry) models.FileResult {
	if err := ctx.Err(); err != nil {
		return models.FileResult{Path: entry.Path, SkipReason: err.Error()}
	}

	content, err := a.source.GetFileContent(ctx, owner, repo, entry.Path)
	if err != nil {
		logger.Warn(ctx, "could not analyze file",
			"path", entry.Path,
			"error", err)
		return models.FileResult{Path: entry.Path, SkipReason: err.Error()}
	}

	insight := a.classifier.Classify(entry.Path, content)
	return models.FileResult{Path: entry.Path, Insight: &insight}
}
