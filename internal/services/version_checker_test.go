package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matereadme/internal/i18n"
)

type MockReleaseSource struct {
	mock.Mock
}

func (m *MockReleaseSource) GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*github.RepositoryRelease), nil, args.Error(2)
}

func newTestChecker(t *testing.T, current string, src releaseSource) (*VersionChecker, *bytes.Buffer, string) {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	dir := t.TempDir()
	var out bytes.Buffer
	return NewVersionChecker(current, trans,
		WithReleaseSource(src),
		WithCacheDir(dir),
		WithNotificationWriter(&out),
	), &out, dir
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{"patch update available", "v1.0.0", "v1.0.1", true},
		{"minor update available", "v1.0.0", "v1.1.0", true},
		{"major update available", "v1.0.0", "v2.0.0", true},
		{"no update available - same version", "v1.0.0", "v1.0.0", false},
		{"no update - current is newer", "v1.5.0", "v1.4.9", false},
		{"without v prefix in current", "1.0.0", "v1.0.1", true},
		{"without v prefix in latest", "v1.0.0", "1.0.1", true},
		{"invalid version is never an update", "dev", "v1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, _, _ := newTestChecker(t, tt.current, &MockReleaseSource{})

			assert.Equal(t, tt.expected, checker.isUpdateAvailable(tt.latest))
		})
	}
}

func TestCheckForUpdates(t *testing.T) {
	t.Run("should notify and cache when a newer release exists", func(t *testing.T) {
		// Arrange
		src := &MockReleaseSource{}
		src.On("GetLatestRelease", mock.Anything, "thomas-vilte", "matereadme").
			Return(&github.RepositoryRelease{TagName: github.Ptr("v0.2.0")}, nil, nil)
		checker, out, dir := newTestChecker(t, "0.1.0", src)

		// Act
		checker.CheckForUpdates(context.Background())

		// Assert
		assert.Contains(t, out.String(), "v0.2.0")
		cache, err := checker.loadCache()
		require.NoError(t, err)
		assert.Equal(t, "v0.2.0", cache.LatestKnown)
		assert.FileExists(t, filepath.Join(dir, "last_update_check.json"))
	})

	t.Run("should use a fresh cache without calling GitHub", func(t *testing.T) {
		src := &MockReleaseSource{}
		checker, out, dir := newTestChecker(t, "0.1.0", src)
		data, _ := json.Marshal(UpdateCache{LastCheck: time.Now(), LatestKnown: "v0.1.0"})
		require.NoError(t, os.WriteFile(filepath.Join(dir, "last_update_check.json"), data, 0644))

		checker.CheckForUpdates(context.Background())

		assert.Empty(t, out.String())
		src.AssertNotCalled(t, "GetLatestRelease", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should stay silent when GitHub fails", func(t *testing.T) {
		src := &MockReleaseSource{}
		src.On("GetLatestRelease", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil, errors.New("offline"))
		checker, out, _ := newTestChecker(t, "0.1.0", src)

		checker.CheckForUpdates(context.Background())

		assert.Empty(t, out.String())
	})

	t.Run("should do nothing when disabled", func(t *testing.T) {
		t.Setenv(EnvDisableUpdateCheck, "1")
		src := &MockReleaseSource{}
		checker, out, _ := newTestChecker(t, "0.1.0", src)

		checker.CheckForUpdates(context.Background())

		assert.Empty(t, out.String())
		src.AssertNotCalled(t, "GetLatestRelease", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVersionChecker_LoadCache_InvalidJSON(t *testing.T) {
	checker, _, dir := newTestChecker(t, "0.1.0", &MockReleaseSource{})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "last_update_check.json"), []byte("{bad"), 0644))

	_, err := checker.loadCache()

	assert.Error(t, err)
}
