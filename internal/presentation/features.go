package presentation

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

const (
	statusComplete = "✅ Complete"
	minFeatureRows = 4
)

type featureRule struct {
	Match func(meta models.RepositoryMetadata, a *models.RepositoryAnalysis) bool
	Row   func(meta models.RepositoryMetadata, a *models.RepositoryAnalysis) models.FeatureRow
}

func fixedRow(icon, name, description string) func(models.RepositoryMetadata, *models.RepositoryAnalysis) models.FeatureRow {
	return func(models.RepositoryMetadata, *models.RepositoryAnalysis) models.FeatureRow {
		return models.FeatureRow{Icon: icon, Name: name, Description: description, Status: statusComplete}
	}
}

var featureRules = []featureRule{
	{
		Match: func(m models.RepositoryMetadata, _ *models.RepositoryAnalysis) bool { return m.LanguageOr("") != "" },
		Row: func(m models.RepositoryMetadata, _ *models.RepositoryAnalysis) models.FeatureRow {
			lang := m.LanguageOr("")
			return models.FeatureRow{
				Icon:        "🔧",
				Name:        lang + " Implementation",
				Description: "Built with " + lang,
				Status:      statusComplete,
			}
		},
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool {
			return a != nil && len(a.Frameworks) > 0
		},
		Row: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) models.FeatureRow {
			return models.FeatureRow{
				Icon:        "⚡",
				Name:        "Modern Framework",
				Description: fmt.Sprintf("Powered by %s", strings.Join(a.Frameworks, ", ")),
				Status:      statusComplete,
			}
		},
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool {
			return a != nil && a.Features.Contains("Testing suite")
		},
		Row: fixedRow("🧪", "Testing Suite", "Comprehensive test coverage"),
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool { return a != nil && a.HasDocker },
		Row:   fixedRow("🐳", "Docker Support", "Containerized deployment"),
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool { return a != nil && a.HasCICD },
		Row:   fixedRow("🔄", "CI/CD Pipeline", "Automated testing and deployment"),
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool { return a.HasFeatureContaining("database") },
		Row:   fixedRow("💾", "Database Integration", "Persistent data storage"),
	},
	{
		Match: func(_ models.RepositoryMetadata, a *models.RepositoryAnalysis) bool {
			return a.HasFeatureContaining("authentication")
		},
		Row: fixedRow("🔐", "Authentication", "Secure user authentication"),
	},
}

var paddingRows = []models.FeatureRow{
	{Icon: "📱", Name: "Responsive Design", Description: "Works on all devices", Status: statusComplete},
	{Icon: "🎨", Name: "Modern UI", Description: "Clean and intuitive interface", Status: statusComplete},
	{Icon: "⚙️", Name: "Easy Setup", Description: "Quick to install and configure", Status: statusComplete},
	{Icon: "🌍", Name: "Open Source", Description: "Free to use and extend", Status: statusComplete},
}

// FeatureTable returns detected feature rows in a fixed priority order,
// padded with generic rows until there are at least four.
func FeatureTable(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) []models.FeatureRow {
	rows := make([]models.FeatureRow, 0, len(featureRules))
	for _, rule := range featureRules {
		if rule.Match(meta, analysis) {
			rows = append(rows, rule.Row(meta, analysis))
		}
	}

	for _, pad := range paddingRows {
		if len(rows) >= minFeatureRows {
			break
		}
		rows = append(rows, pad)
	}
	return rows
}
