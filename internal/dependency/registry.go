package dependency

import (
	"path"
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// Manifest is the dependency list extracted from a package manifest.
type Manifest struct {
	Runtime     []string
	Development []string
}

// All returns runtime dependencies followed by development ones, without duplicates.
func (m Manifest) All() models.Set {
	return models.NewSet(m.Runtime...).Union(models.NewSet(m.Development...))
}

// ManifestParser reads the dependency list of one manifest format.
type ManifestParser interface {
	// Name returns the manifest file name, used as its identity in analysis results.
	Name() string
	// CanHandle reports whether the lower-cased repository path is this manifest.
	CanHandle(lowerPath string) bool
	// Parse extracts dependency names. Errors mean the content is malformed.
	Parse(content string) (Manifest, error)
}

type Registry struct {
	parsers []ManifestParser
}

func NewRegistry() *Registry {
	return &Registry{
		parsers: []ManifestParser{
			NewPackageJSONParser(),
			NewComposerParser(),
			NewGoModParser(),
			NewCargoParser(),
			NewPyProjectParser(),
			NewRequirementsParser(),
			NewPubspecParser(),
			NewCondaParser(),
			NewMavenParser(),
		},
	}
}

// RegisterParser adds a custom parser. Later parsers lose ties to earlier ones.
func (r *Registry) RegisterParser(p ManifestParser) {
	r.parsers = append(r.parsers, p)
}

// ParserFor returns the first parser that handles path, or nil.
func (r *Registry) ParserFor(filePath string) ManifestParser {
	lower := strings.ToLower(filePath)
	for _, p := range r.parsers {
		if p.CanHandle(lower) {
			return p
		}
	}
	return nil
}

// Names returns the manifest names the registry recognises, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for _, p := range r.parsers {
		names = append(names, p.Name())
	}
	return names
}

func baseName(lowerPath string) string {
	return path.Base(lowerPath)
}
