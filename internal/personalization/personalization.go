// Package personalization derives the categorical labels that steer the
// README narrative: what kind of project it is, how it is installed and how
// it is used. Every function is total and returns a fallback label.
package personalization

import (
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// Derive computes the personalization labels. A nil analysis is treated as
// a repository with no detected frameworks or dependencies.
func Derive(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) models.PersonalizationContext {
	f := newFacts(meta, analysis)
	f.ProjectType = firstMatch(projectTypeRules, f, FallbackProjectType)

	return models.PersonalizationContext{
		ProjectType:        f.ProjectType,
		InstallationMethod: firstMatch(installationRules, f, FallbackInstallation),
		UsagePattern:       firstMatch(usageRules, f, FallbackUsage),
	}
}

func ProjectType(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) string {
	return firstMatch(projectTypeRules, newFacts(meta, analysis), FallbackProjectType)
}

func UsagePattern(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis, projectType string) string {
	f := newFacts(meta, analysis)
	f.ProjectType = projectType
	return firstMatch(usageRules, f, FallbackUsage)
}

func InstallationMethod(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) string {
	return firstMatch(installationRules, newFacts(meta, analysis), FallbackInstallation)
}

func newFacts(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) facts {
	f := facts{
		Language:    strings.ToLower(meta.LanguageOr("")),
		Name:        strings.ToLower(meta.Name),
		Description: strings.ToLower(meta.DescriptionOr("")),
	}
	if analysis != nil {
		f.Frameworks = analysis.Frameworks
		f.Dependencies = analysis.Dependencies
		f.Manifests = analysis.Manifests
	}
	return f
}
