package models

// FileType is the coarse category the classifier assigns to a file.
type FileType string

const (
	FileTypeManifest      FileType = "package-manifest"
	FileTypeContainer     FileType = "container-config"
	FileTypeDocumentation FileType = "documentation"
	FileTypeUnclassified  FileType = "unclassified"
)

// FileInsight is what the classifier learns from a single file.
// It never carries the file content itself.
type FileInsight struct {
	Type            FileType `json:"type"`
	Framework       string   `json:"framework,omitempty"`
	Dependencies    Set      `json:"dependencies,omitempty"`
	Features        Set      `json:"features,omitempty"`
	IsConfigFile    bool     `json:"is_config_file"`
	IsTestFile      bool     `json:"is_test_file"`
	IsDocumentation bool     `json:"is_documentation"`
}

// FileResult is the per-file outcome of the analyzer fan-out: either an
// insight or the reason the file was skipped.
type FileResult struct {
	Path       string
	Insight    *FileInsight
	SkipReason string
}

func (r FileResult) Skipped() bool {
	return r.Insight == nil
}

type FileAnalysis struct {
	Path    string      `json:"path"`
	Insight FileInsight `json:"insight"`
}

type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// TreeSignals are the facts derived from paths alone, before any file is fetched.
type TreeSignals struct {
	HasTests  bool
	HasDocker bool
	HasCICD   bool
	Features  Set
	Manifests Set
}

// RepositoryAnalysis is the merged result of tree signals and file insights.
type RepositoryAnalysis struct {
	Frameworks   Set            `json:"frameworks"`
	Dependencies Set            `json:"dependencies"`
	Features     Set            `json:"features"`
	Manifests    Set            `json:"manifests"`
	HasTests     bool           `json:"has_tests"`
	HasDocker    bool           `json:"has_docker"`
	HasCICD      bool           `json:"has_cicd"`
	Files        []FileAnalysis `json:"files"`
	Skipped      []SkippedFile  `json:"skipped,omitempty"`
	TreeSize     int            `json:"tree_size"`
	Truncated    bool           `json:"truncated"`
}

// HasFeatureContaining reports whether any feature tag contains fragment.
func (a *RepositoryAnalysis) HasFeatureContaining(fragment string) bool {
	if a == nil {
		return false
	}
	for _, f := range a.Features {
		if containsFold(f, fragment) {
			return true
		}
	}
	return false
}

// HasDependencyContaining reports whether any dependency name contains one of the fragments.
func (a *RepositoryAnalysis) HasDependencyContaining(fragments ...string) bool {
	if a == nil {
		return false
	}
	for _, d := range a.Dependencies {
		for _, fragment := range fragments {
			if containsFold(d, fragment) {
				return true
			}
		}
	}
	return false
}
