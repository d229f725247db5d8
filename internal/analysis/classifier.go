package analysis

import (
	"strings"

	"github.com/thomas-vilte/matereadme/internal/dependency"
	"github.com/thomas-vilte/matereadme/internal/models"
)

// Classifier turns a path and optional content into a FileInsight using
// path heuristics, manifest parsing and content keyword signals.
// It has no side effects and never fails.
type Classifier struct {
	manifests *dependency.Registry
}

func NewClassifier(manifests *dependency.Registry) *Classifier {
	if manifests == nil {
		manifests = dependency.NewRegistry()
	}
	return &Classifier{manifests: manifests}
}

var defaultClassifier = NewClassifier(nil)

// Classify runs the default classifier. A nil content classifies by path only.
func Classify(path string, content *string) models.FileInsight {
	return defaultClassifier.Classify(path, content)
}

func (c *Classifier) Classify(path string, content *string) models.FileInsight {
	insight := models.FileInsight{
		Type:         models.FileTypeUnclassified,
		Dependencies: models.Set{},
		Features:     models.Set{},
	}
	lower := strings.ToLower(path)

	if parser := c.manifests.ParserFor(lower); parser != nil {
		insight.Type = models.FileTypeManifest
		insight.IsConfigFile = true
		if content != nil {
			// Malformed manifests contribute no dependencies.
			if manifest, err := parser.Parse(*content); err == nil {
				insight.Dependencies = manifest.All()
				insight.Framework = detectFramework(insight.Dependencies)
			}
		}
	}

	if containsAny(lower, containerMarkers) {
		insight.Type = models.FileTypeContainer
		insight.Features = insight.Features.Add(FeatureDocker)
	}

	if containsAny(lower, docMarkers) {
		insight.Type = models.FileTypeDocumentation
		insight.IsDocumentation = true
	}

	if containsAny(lower, testMarkers) {
		insight.IsTestFile = true
		insight.Features = insight.Features.Add(FeatureTesting)
	}

	if containsAny(lower, toolConfigMarkers) {
		insight.IsConfigFile = true
	}

	if content != nil {
		text := strings.ToLower(*content)
		for _, rule := range contentSignals {
			if rule.matches(text) {
				insight.Features = insight.Features.Add(rule.Feature)
			}
		}
	}

	return insight
}

// detectFramework applies every rule and keeps the label of the last match.
func detectFramework(deps models.Set) string {
	framework := ""
	for _, rule := range frameworkRules {
		if rule.Match(deps) {
			framework = rule.Label
		}
	}
	return framework
}
