package dependency

import (
	"encoding/xml"
)

// MavenParser reads pom.xml. Test-scoped artifacts are development dependencies.
type MavenParser struct{}

func NewMavenParser() *MavenParser {
	return &MavenParser{}
}

func (p *MavenParser) Name() string {
	return "pom.xml"
}

func (p *MavenParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "pom.xml"
}

type pomProject struct {
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Scope      string `xml:"scope"`
}

func (p *MavenParser) Parse(content string) (Manifest, error) {
	var pom pomProject
	if err := xml.Unmarshal([]byte(content), &pom); err != nil {
		return Manifest{}, err
	}

	var m Manifest
	for _, d := range pom.Dependencies {
		if d.ArtifactID == "" {
			continue
		}
		if d.Scope == "test" {
			m.Development = append(m.Development, d.ArtifactID)
			continue
		}
		m.Runtime = append(m.Runtime, d.ArtifactID)
	}
	return m, nil
}
