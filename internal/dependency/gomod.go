package dependency

import (
	"golang.org/x/mod/modfile"
)

// GoModParser reads go.mod files. Indirect requirements count as development
// dependencies since the module does not import them itself.
type GoModParser struct{}

func NewGoModParser() *GoModParser {
	return &GoModParser{}
}

func (p *GoModParser) Name() string {
	return "go.mod"
}

func (p *GoModParser) CanHandle(lowerPath string) bool {
	return baseName(lowerPath) == "go.mod"
}

func (p *GoModParser) Parse(content string) (Manifest, error) {
	f, err := modfile.ParseLax("go.mod", []byte(content), nil)
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	for _, req := range f.Require {
		if req.Indirect {
			m.Development = append(m.Development, req.Mod.Path)
			continue
		}
		m.Runtime = append(m.Runtime, req.Mod.Path)
	}
	return m, nil
}
