// Package presentation renders the markdown fragments the model is asked to
// reuse verbatim: technology badges, status badges and the feature table.
package presentation

import "github.com/thomas-vilte/matereadme/internal/models"

func Synthesize(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) models.PresentationArtifacts {
	return models.PresentationArtifacts{
		Badges:       Badges(meta, analysis),
		StatusBadges: StatusBadges(meta),
		Features:     FeatureTable(meta, analysis),
	}
}
