package analysis

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/matereadme/internal/models"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetRecursiveTree(ctx context.Context, owner, repo string) (*models.RepositoryTree, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepositoryTree), args.Error(1)
}

func (m *MockSource) GetFileContent(ctx context.Context, owner, repo, path string) (*string, error) {
	args := m.Called(ctx, owner, repo, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func file(path string, size int) models.FileEntry {
	return models.FileEntry{Path: path, Kind: models.EntryFile, Size: &size}
}

func dir(path string) models.FileEntry {
	return models.FileEntry{Path: path, Kind: models.EntryDir}
}

func text(s string) *string {
	return &s
}
