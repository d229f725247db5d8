package vcs

import (
	"context"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// RepositoryReader is the read capability used by analysis and generation.
type RepositoryReader interface {
	// GetRepository returns the metadata of owner/repo.
	GetRepository(ctx context.Context, owner, repo string) (*models.RepositoryMetadata, error)
	// GetRecursiveTree returns the flattened tree of the default branch.
	GetRecursiveTree(ctx context.Context, owner, repo string) (*models.RepositoryTree, error)
	// GetFileContent returns decoded file content, or nil when path is not a file.
	GetFileContent(ctx context.Context, owner, repo, path string) (*string, error)
}

// RepositoryLister lists repositories visible to the authenticated user.
type RepositoryLister interface {
	ListRepositories(ctx context.Context, limit int) ([]models.RepositoryMetadata, error)
	// GetAuthenticatedUser gets the current authenticated user
	GetAuthenticatedUser(ctx context.Context) (string, error)
}

// ReadmePublisher commits a file back to a repository, creating or updating it.
type ReadmePublisher interface {
	PutFile(ctx context.Context, owner, repo, path, content, message string) (*models.PublishResult, error)
}

// VCSClient bundles every capability the CLI needs from a hosting service.
type VCSClient interface {
	RepositoryReader
	RepositoryLister
	ReadmePublisher
}
