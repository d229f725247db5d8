package analysis

import (
	"github.com/thomas-vilte/matereadme/internal/models"
)

// Aggregate merges tree signals and per-file results. Set fields are unions
// and flags only ever turn on, so the result does not depend on the order of
// results except for the order of Files and Skipped.
func Aggregate(signals models.TreeSignals, results []models.FileResult) *models.RepositoryAnalysis {
	a := &models.RepositoryAnalysis{
		Frameworks:   models.Set{},
		Dependencies: models.Set{},
		Features:     models.Set{}.Union(signals.Features),
		Manifests:    models.Set{}.Union(signals.Manifests),
		HasTests:     signals.HasTests,
		HasDocker:    signals.HasDocker,
		HasCICD:      signals.HasCICD,
		Files:        []models.FileAnalysis{},
	}

	for _, r := range results {
		if r.Skipped() {
			a.Skipped = append(a.Skipped, models.SkippedFile{Path: r.Path, Reason: r.SkipReason})
			continue
		}
		merge(a, r.Path, *r.Insight)
	}
	return a
}

func merge(a *models.RepositoryAnalysis, path string, in models.FileInsight) {
	a.Files = append(a.Files, models.FileAnalysis{Path: path, Insight: in})
	a.Frameworks = a.Frameworks.Add(in.Framework)
	a.Dependencies = a.Dependencies.Union(in.Dependencies)
	a.Features = a.Features.Union(in.Features)
	a.HasTests = a.HasTests || in.IsTestFile
	a.HasDocker = a.HasDocker || in.Type == models.FileTypeContainer
}
