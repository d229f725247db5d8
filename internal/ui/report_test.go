package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/models"
)

func newTranslations(t *testing.T) *i18n.Translations {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return translations
}

func TestRenderAnalysisReport(t *testing.T) {
	t.Run("should include detection and feature table", func(t *testing.T) {
		// Arrange
		trans := newTranslations(t)
		report := &models.AnalysisReport{
			Repository: models.RepositorySummary{FullName: "octo/api", Language: "Go", Stars: 12, Description: "HTTP service"},
			Analysis: &models.RepositoryAnalysis{
				Frameworks: models.NewSet("Gin"),
				Features:   models.NewSet("Docker containerization"),
				Manifests:  models.NewSet("go.mod"),
				HasDocker:  true,
				TreeSize:   40,
				Truncated:  true,
			},
			Personalization: models.PersonalizationContext{ProjectType: "api"},
			Presentation: models.PresentationArtifacts{
				Features: []models.FeatureRow{{Icon: "🐳", Name: "Docker", Description: "Runs in a container"}},
			},
		}

		// Act
		out := RenderAnalysisReport(report, trans)

		// Assert
		assert.Contains(t, out, "octo/api")
		assert.Contains(t, out, "HTTP service")
		assert.Contains(t, out, "Gin")
		assert.Contains(t, out, "go.mod")
		assert.Contains(t, out, "Runs in a container")
		assert.Contains(t, out, trans.GetMessage("report.truncated", 0, nil))
	})

	t.Run("should skip detection without analysis", func(t *testing.T) {
		trans := newTranslations(t)
		report := &models.AnalysisReport{Repository: models.RepositorySummary{FullName: "octo/empty"}}

		out := RenderAnalysisReport(report, trans)

		assert.Contains(t, out, "octo/empty")
		assert.NotContains(t, out, trans.GetMessage("report.detection_title", 0, nil))
	})
}

func TestRenderRepositoryList(t *testing.T) {
	t.Run("should list every repository", func(t *testing.T) {
		trans := newTranslations(t)
		lang := "Rust"
		repos := []models.RepositoryMetadata{
			{FullName: "octo/one", Language: &lang, Stars: 3, UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
			{FullName: "octo/two"},
		}

		out := RenderRepositoryList(repos, trans)

		assert.Contains(t, out, "octo/one")
		assert.Contains(t, out, "octo/two")
		assert.Contains(t, out, "Rust")
		assert.Contains(t, out, "2026-01-02")
		assert.Contains(t, out, "2 repositories")
	})

	t.Run("should show the empty message", func(t *testing.T) {
		trans := newTranslations(t)

		out := RenderRepositoryList(nil, trans)

		assert.Contains(t, out, trans.GetMessage("repos.empty", 0, nil))
	})
}

func TestRenderGenerationSummary(t *testing.T) {
	trans := newTranslations(t)
	result := &models.GenerationResult{
		Content:    "# x",
		Mode:       models.PromptModeCustom,
		Provider:   "groq",
		Repository: models.RepositorySummary{FullName: "octo/x"},
	}

	out := RenderGenerationSummary(result, trans)

	assert.Contains(t, out, "octo/x")
	assert.Contains(t, out, "groq")
	assert.Contains(t, out, trans.GetMessage("mode.custom", 0, nil))
}
