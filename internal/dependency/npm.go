package dependency

import (
	"encoding/json"
	"sort"
	"strings"
)

// PackageJSONParser reads npm manifests. Any path containing package.json
// is treated as one, matching how the file is usually found in monorepos.
type PackageJSONParser struct{}

func NewPackageJSONParser() *PackageJSONParser {
	return &PackageJSONParser{}
}

func (p *PackageJSONParser) Name() string {
	return "package.json"
}

func (p *PackageJSONParser) CanHandle(lowerPath string) bool {
	return strings.Contains(lowerPath, "package.json")
}

// Only dependency names are read, so the sections are kept raw and a malformed
// one does not hide the other.
type packageJSON struct {
	Dependencies    json.RawMessage `json:"dependencies"`
	DevDependencies json.RawMessage `json:"devDependencies"`
}

func (p *PackageJSONParser) Parse(content string) (Manifest, error) {
	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return Manifest{}, err
	}
	return Manifest{
		Runtime:     objectKeys(pkg.Dependencies),
		Development: objectKeys(pkg.DevDependencies),
	}, nil
}

// objectKeys returns the sorted keys of a JSON object, or nothing when the
// value is not an object.
func objectKeys(raw json.RawMessage) []string {
	var section map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &section) != nil {
		return []string{}
	}
	return sortedKeys(section)
}

// ComposerParser reads PHP composer manifests.
type ComposerParser struct{}

func NewComposerParser() *ComposerParser {
	return &ComposerParser{}
}

func (p *ComposerParser) Name() string {
	return "composer.json"
}

func (p *ComposerParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "composer.json"
}

type composerJSON struct {
	Require    json.RawMessage `json:"require"`
	RequireDev json.RawMessage `json:"require-dev"`
}

func (p *ComposerParser) Parse(content string) (Manifest, error) {
	var c composerJSON
	if err := json.Unmarshal([]byte(content), &c); err != nil {
		return Manifest{}, err
	}
	return Manifest{
		Runtime:     withoutPlatform(objectKeys(c.Require)),
		Development: withoutPlatform(objectKeys(c.RequireDev)),
	}, nil
}

// withoutPlatform drops the php runtime and extension constraints.
func withoutPlatform(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n == "php" || strings.HasPrefix(n, "ext-") {
			continue
		}
		out = append(out, n)
	}
	return out
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
