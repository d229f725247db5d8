package dependency

import (
	"bufio"
	"strings"
)

// RequirementsParser reads pip requirement files (requirements.txt,
// requirements-dev.txt, ...). Every entry is reported as a runtime dependency.
type RequirementsParser struct{}

func NewRequirementsParser() *RequirementsParser {
	return &RequirementsParser{}
}

func (p *RequirementsParser) Name() string {
	return "requirements.txt"
}

func (p *RequirementsParser) CanHandle(lowerPath string) bool {
	base := baseName(lowerPath)
	return strings.HasPrefix(base, "requirements") && strings.HasSuffix(base, ".txt")
}

func (p *RequirementsParser) Parse(content string) (Manifest, error) {
	var m Manifest
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, " #"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") || strings.Contains(line, "://") {
			continue
		}
		if name := requirementName(line); name != "" {
			m.Runtime = append(m.Runtime, name)
		}
	}
	return m, scanner.Err()
}
