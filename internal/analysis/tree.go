package analysis

import (
	"path"
	"strings"

	"github.com/thomas-vilte/matereadme/internal/dependency"
	"github.com/thomas-vilte/matereadme/internal/models"
)

// DetectTreeSignals derives CI, container and test presence from paths alone,
// and records which known manifests exist anywhere in the tree.
func DetectTreeSignals(entries []models.FileEntry, manifests *dependency.Registry) models.TreeSignals {
	if manifests == nil {
		manifests = dependency.NewRegistry()
	}
	signals := models.TreeSignals{
		Features:  models.Set{},
		Manifests: models.Set{},
	}

	for _, e := range entries {
		lower := strings.ToLower(e.Path)

		if !signals.HasCICD && containsAny(lower, treeCICDMarkers) {
			signals.HasCICD = true
		}
		if !signals.HasDocker && containsAny(lower, treeContainerMarkers) {
			signals.HasDocker = true
		}
		if !signals.HasTests && containsAny(lower, treeTestMarkers) {
			signals.HasTests = true
		}

		if e.Kind != models.EntryFile {
			continue
		}
		if p := manifests.ParserFor(lower); p != nil {
			signals.Manifests = signals.Manifests.Add(p.Name())
		}
		for _, marker := range installMarkers {
			if path.Base(lower) == marker {
				signals.Manifests = signals.Manifests.Add(marker)
			}
		}
	}

	if signals.HasCICD {
		signals.Features = signals.Features.Add(FeatureCICD)
	}
	if signals.HasDocker {
		signals.Features = signals.Features.Add(FeatureDocker)
	}
	if signals.HasTests {
		signals.Features = signals.Features.Add(FeatureTesting)
	}
	return signals
}

// SelectCandidates filters the tree through the allow-list and keeps the
// first limit matches in tree order. The second return value reports how
// many entries matched before truncation.
func SelectCandidates(entries []models.FileEntry, limit int) ([]models.FileEntry, int) {
	matched := 0
	var out []models.FileEntry
	for _, e := range entries {
		lower := strings.ToLower(e.Path)
		if !containsAny(lower, candidateMarkers) && !hasAnySuffix(lower, candidateSuffixes) {
			continue
		}
		matched++
		if limit <= 0 || len(out) < limit {
			out = append(out, e)
		}
	}
	return out, matched
}
