package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/matereadme/internal/models"
)

type (
	MockVCSClient struct {
		mock.Mock
	}

	MockTextCompleter struct {
		mock.Mock
	}
)

func (m *MockVCSClient) GetRepository(ctx context.Context, owner, repo string) (*models.RepositoryMetadata, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepositoryMetadata), args.Error(1)
}

func (m *MockVCSClient) GetRecursiveTree(ctx context.Context, owner, repo string) (*models.RepositoryTree, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepositoryTree), args.Error(1)
}

func (m *MockVCSClient) GetFileContent(ctx context.Context, owner, repo, path string) (*string, error) {
	args := m.Called(ctx, owner, repo, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockVCSClient) ListRepositories(ctx context.Context, limit int) ([]models.RepositoryMetadata, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepositoryMetadata), args.Error(1)
}

func (m *MockVCSClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) PutFile(ctx context.Context, owner, repo, path, content, message string) (*models.PublishResult, error) {
	args := m.Called(ctx, owner, repo, path, content, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublishResult), args.Error(1)
}

func (m *MockTextCompleter) Complete(ctx context.Context, doc models.PromptDocument, params models.ModelParams) (*models.Completion, error) {
	args := m.Called(ctx, doc, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Completion), args.Error(1)
}

func (m *MockTextCompleter) GetProviderName() string {
	args := m.Called()
	return args.String(0)
}
