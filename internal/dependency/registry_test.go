package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matereadme/internal/models"
)

type stubParser struct{}

func (s stubParser) Name() string { return "deps.edn" }

func (s stubParser) CanHandle(lowerPath string) bool { return baseName(lowerPath) == "deps.edn" }

func (s stubParser) Parse(string) (Manifest, error) {
	return Manifest{Runtime: []string{"clojure"}}, nil
}

func TestRegistry_ParserFor(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		path string
		want string
	}{
		{"package.json", "package.json"},
		{"apps/web/Package.JSON", "package.json"},
		{"composer.json", "composer.json"},
		{"tools/go.mod", "go.mod"},
		{"Cargo.toml", "cargo.toml"},
		{"pyproject.toml", "pyproject.toml"},
		{"requirements-dev.txt", "requirements.txt"},
		{"app/pubspec.yaml", "pubspec.yaml"},
		{"environment.yml", "environment.yml"},
		{"backend/pom.xml", "pom.xml"},
		{"package-lock.json", ""},
		{"src/index.js", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := registry.ParserFor(tt.path)
			if tt.want == "" {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestRegistry_RegisterParser(t *testing.T) {
	registry := NewRegistry()
	initial := len(registry.Names())

	registry.RegisterParser(stubParser{})

	assert.Len(t, registry.Names(), initial+1)
	require.NotNil(t, registry.ParserFor("deps.edn"))
}

func TestManifest_All(t *testing.T) {
	m := Manifest{Runtime: []string{"react", "axios"}, Development: []string{"jest", "axios"}}

	assert.Equal(t, models.Set{"react", "axios", "jest"}, m.All())
}

func TestPackageJSONParser(t *testing.T) {
	p := NewPackageJSONParser()

	t.Run("should read dependencies and devDependencies", func(t *testing.T) {
		m, err := p.Parse(`{"dependencies":{"react":"^18","express":"^4"},"devDependencies":{"jest":"^29"}}`)

		require.NoError(t, err)
		assert.Equal(t, []string{"express", "react"}, m.Runtime)
		assert.Equal(t, []string{"jest"}, m.Development)
	})

	t.Run("should fail on invalid json", func(t *testing.T) {
		_, err := p.Parse(`{"dependencies": {`)

		assert.Error(t, err)
	})

	t.Run("should read names when versions are not strings", func(t *testing.T) {
		m, err := p.Parse(`{"dependencies":{"react":"^18","local-lib":{"path":"../lib"},"pinned":1},"devDependencies":["jest"]}`)

		require.NoError(t, err)
		assert.Equal(t, []string{"local-lib", "pinned", "react"}, m.Runtime)
		assert.Empty(t, m.Development)
	})

	t.Run("should accept manifests without dependencies", func(t *testing.T) {
		m, err := p.Parse(`{"name":"empty"}`)

		require.NoError(t, err)
		assert.Empty(t, m.All())
	})
}

func TestComposerParser(t *testing.T) {
	m, err := NewComposerParser().Parse(`{"require":{"php":">=8.1","ext-json":"*","laravel/framework":"^10"},"require-dev":{"phpunit/phpunit":"^10"}}`)

	require.NoError(t, err)
	assert.Equal(t, []string{"laravel/framework"}, m.Runtime)
	assert.Equal(t, []string{"phpunit/phpunit"}, m.Development)

	t.Run("should tolerate an empty array section", func(t *testing.T) {
		m, err := NewComposerParser().Parse(`{"require":{"monolog/monolog":"^3"},"require-dev":[]}`)

		require.NoError(t, err)
		assert.Equal(t, []string{"monolog/monolog"}, m.Runtime)
		assert.Empty(t, m.Development)
	})
}

func TestGoModParser(t *testing.T) {
	content := `module example.com/app

go 1.22

require (
	github.com/gin-gonic/gin v1.9.1
	github.com/redis/go-redis/v9 v9.5.1
	golang.org/x/sys v0.20.0 // indirect
)

require github.com/stretchr/testify v1.9.0
`
	m, err := NewGoModParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/gin-gonic/gin", "github.com/redis/go-redis/v9", "github.com/stretchr/testify"}, m.Runtime)
	assert.Equal(t, []string{"golang.org/x/sys"}, m.Development)
}

func TestCargoParser(t *testing.T) {
	content := `[package]
name = "svc"

[dependencies]
tokio = { version = "1", features = ["full"] }
axum = "0.7"

[dev-dependencies]
criterion = "0.5"
`
	m, err := NewCargoParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"axum", "tokio"}, m.Runtime)
	assert.Equal(t, []string{"criterion"}, m.Development)
}

func TestPyProjectParser(t *testing.T) {
	t.Run("should read PEP 621 tables", func(t *testing.T) {
		content := `[project]
name = "api"
dependencies = ["FastAPI>=0.110", "sqlalchemy[asyncio]~=2.0"]

[project.optional-dependencies]
test = ["pytest"]
`
		m, err := NewPyProjectParser().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []string{"fastapi", "sqlalchemy"}, m.Runtime)
		assert.Equal(t, []string{"pytest"}, m.Development)
	})

	t.Run("should read poetry tables", func(t *testing.T) {
		content := `[tool.poetry.dependencies]
python = "^3.11"
Django = "^5.0"

[tool.poetry.group.dev.dependencies]
black = "*"
`
		m, err := NewPyProjectParser().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []string{"django"}, m.Runtime)
		assert.Equal(t, []string{"black"}, m.Development)
	})
}

func TestRequirementsParser(t *testing.T) {
	content := `# web
Flask==3.0.0
requests>=2.31 # http
-r base.txt
-e .
git+https://github.com/org/pkg.git

gunicorn
`
	m, err := NewRequirementsParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"flask", "requests", "gunicorn"}, m.Runtime)
}

func TestPubspecParser(t *testing.T) {
	content := `name: app
dependencies:
  flutter:
    sdk: flutter
  http: ^1.2.0
dev_dependencies:
  flutter_test:
    sdk: flutter
`
	m, err := NewPubspecParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"flutter", "http"}, m.Runtime)
	assert.Equal(t, []string{"flutter_test"}, m.Development)
}

func TestCondaParser(t *testing.T) {
	content := `name: ml
dependencies:
  - python=3.11
  - conda-forge::numpy=1.26
  - pandas
  - pip
  - pip:
      - torch==2.2.0
`
	m, err := NewCondaParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"numpy", "pandas", "torch"}, m.Runtime)
}

func TestMavenParser(t *testing.T) {
	content := `<?xml version="1.0"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
    <dependency>
      <groupId>org.junit.jupiter</groupId>
      <artifactId>junit-jupiter</artifactId>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`
	m, err := NewMavenParser().Parse(content)

	require.NoError(t, err)
	assert.Equal(t, []string{"spring-boot-starter-web"}, m.Runtime)
	assert.Equal(t, []string{"junit-jupiter"}, m.Development)
}
