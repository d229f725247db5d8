package dependency

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thomas-vilte/matereadme/internal/regex"
)

// CargoParser reads Rust Cargo.toml manifests.
type CargoParser struct{}

func NewCargoParser() *CargoParser {
	return &CargoParser{}
}

func (p *CargoParser) Name() string {
	return "cargo.toml"
}

func (p *CargoParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "cargo.toml"
}

type cargoManifest struct {
	Dependencies      map[string]toml.Primitive `toml:"dependencies"`
	DevDependencies   map[string]toml.Primitive `toml:"dev-dependencies"`
	BuildDependencies map[string]toml.Primitive `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]toml.Primitive `toml:"dependencies"`
	} `toml:"workspace"`
}

func (p *CargoParser) Parse(content string) (Manifest, error) {
	var c cargoManifest
	if _, err := toml.Decode(content, &c); err != nil {
		return Manifest{}, err
	}

	runtime := primitiveKeys(c.Dependencies)
	runtime = append(runtime, primitiveKeys(c.Workspace.Dependencies)...)
	dev := primitiveKeys(c.DevDependencies)
	dev = append(dev, primitiveKeys(c.BuildDependencies)...)

	return Manifest{Runtime: runtime, Development: dev}, nil
}

// PyProjectParser reads PEP 621 and Poetry sections of pyproject.toml.
type PyProjectParser struct{}

func NewPyProjectParser() *PyProjectParser {
	return &PyProjectParser{}
}

func (p *PyProjectParser) Name() string {
	return "pyproject.toml"
}

func (p *PyProjectParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "pyproject.toml"
}

type pyProject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]toml.Primitive `toml:"dependencies"`
			DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]toml.Primitive `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (p *PyProjectParser) Parse(content string) (Manifest, error) {
	var py pyProject
	if _, err := toml.Decode(content, &py); err != nil {
		return Manifest{}, err
	}

	var m Manifest
	for _, spec := range py.Project.Dependencies {
		if name := requirementName(spec); name != "" {
			m.Runtime = append(m.Runtime, name)
		}
	}
	for _, name := range primitiveKeys(py.Tool.Poetry.Dependencies) {
		if name == "python" {
			continue
		}
		m.Runtime = append(m.Runtime, strings.ToLower(name))
	}

	groups := make([]string, 0, len(py.Project.OptionalDependencies))
	for g := range py.Project.OptionalDependencies {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		for _, spec := range py.Project.OptionalDependencies[g] {
			if name := requirementName(spec); name != "" {
				m.Development = append(m.Development, name)
			}
		}
	}
	for _, name := range primitiveKeys(py.Tool.Poetry.DevDependencies) {
		m.Development = append(m.Development, strings.ToLower(name))
	}
	poetryGroups := make([]string, 0, len(py.Tool.Poetry.Group))
	for g := range py.Tool.Poetry.Group {
		poetryGroups = append(poetryGroups, g)
	}
	sort.Strings(poetryGroups)
	for _, g := range poetryGroups {
		for _, name := range primitiveKeys(py.Tool.Poetry.Group[g].Dependencies) {
			m.Development = append(m.Development, strings.ToLower(name))
		}
	}

	return m, nil
}

func primitiveKeys(m map[string]toml.Primitive) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// requirementName extracts the lower-cased distribution name from a PEP 508
// specifier such as "Django>=4.2; python_version>'3.8'".
func requirementName(spec string) string {
	m := regex.RequirementName.FindStringSubmatch(spec)
	if len(m) < 2 {
		return ""
	}
	return strings.ToLower(m[1])
}
