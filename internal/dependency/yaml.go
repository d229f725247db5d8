package dependency

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PubspecParser reads Dart and Flutter pubspec.yaml manifests.
type PubspecParser struct{}

func NewPubspecParser() *PubspecParser {
	return &PubspecParser{}
}

func (p *PubspecParser) Name() string {
	return "pubspec.yaml"
}

func (p *PubspecParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "pubspec.yaml"
}

type pubspec struct {
	Dependencies    map[string]yaml.Node `yaml:"dependencies"`
	DevDependencies map[string]yaml.Node `yaml:"dev_dependencies"`
}

func (p *PubspecParser) Parse(content string) (Manifest, error) {
	var spec pubspec
	if err := yaml.Unmarshal([]byte(content), &spec); err != nil {
		return Manifest{}, err
	}
	return Manifest{
		Runtime:     nodeKeys(spec.Dependencies),
		Development: nodeKeys(spec.DevDependencies),
	}, nil
}

// CondaParser reads conda environment files, including their nested pip list.
type CondaParser struct{}

func NewCondaParser() *CondaParser {
	return &CondaParser{}
}

func (p *CondaParser) Name() string {
	return "environment.yml"
}

func (p *CondaParser) CanHandle(lowerPath string) bool {
	base := baseName(lowerPath)
	return base == "environment.yml" || base == "environment.yaml"
}

type condaEnv struct {
	Dependencies []yaml.Node `yaml:"dependencies"`
}

func (p *CondaParser) Parse(content string) (Manifest, error) {
	var env condaEnv
	if err := yaml.Unmarshal([]byte(content), &env); err != nil {
		return Manifest{}, err
	}

	var m Manifest
	for _, node := range env.Dependencies {
		switch node.Kind {
		case yaml.ScalarNode:
			if name := condaName(node.Value); name != "" && name != "python" && name != "pip" {
				m.Runtime = append(m.Runtime, name)
			}
		case yaml.MappingNode:
			var nested map[string][]string
			if err := node.Decode(&nested); err != nil {
				return Manifest{}, err
			}
			for _, spec := range nested["pip"] {
				if name := requirementName(spec); name != "" {
					m.Runtime = append(m.Runtime, name)
				}
			}
		}
	}
	return m, nil
}

// condaName strips channel prefixes and version pins: "conda-forge::numpy=1.26".
func condaName(spec string) string {
	if i := strings.Index(spec, "::"); i >= 0 {
		spec = spec[i+2:]
	}
	return requirementName(spec)
}

func nodeKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
