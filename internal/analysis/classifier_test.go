package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/matereadme/internal/models"
)

func TestClassify(t *testing.T) {
	t.Run("should extract dependencies and framework from package.json", func(t *testing.T) {
		// Arrange
		content := `{"dependencies":{"react":"^18.2.0","mongoose":"^8"},"devDependencies":{"jest":"^29"}}`

		// Act
		insight := Classify("package.json", &content)

		// Assert
		assert.Equal(t, models.FileTypeManifest, insight.Type)
		assert.True(t, insight.IsConfigFile)
		assert.Equal(t, "React", insight.Framework)
		assert.True(t, insight.Dependencies.Equal(models.Set{"react", "mongoose", "jest"}))
		assert.True(t, insight.Features.Contains("MongoDB database"))
		assert.True(t, insight.Features.Contains("Unit testing"))
	})

	t.Run("should keep only the last matching framework", func(t *testing.T) {
		content := `{"dependencies":{"react":"^18","express":"^4"}}`

		insight := Classify("package.json", &content)

		assert.Equal(t, "Express.js", insight.Framework)
	})

	t.Run("should recover from malformed manifests", func(t *testing.T) {
		content := `{"dependencies": {"react": `

		insight := Classify("package.json", &content)

		assert.Equal(t, models.FileTypeManifest, insight.Type)
		assert.Empty(t, insight.Dependencies)
		assert.Empty(t, insight.Framework)
	})

	t.Run("should let later path rules overwrite the type", func(t *testing.T) {
		insight := Classify("docs/docker-compose.md", nil)

		assert.Equal(t, models.FileTypeDocumentation, insight.Type)
		assert.True(t, insight.IsDocumentation)
		assert.True(t, insight.Features.Contains(FeatureDocker))
	})

	t.Run("should flag test files", func(t *testing.T) {
		insight := Classify("src/app.test.ts", text("import { render } from '@testing-library/react'"))

		assert.True(t, insight.IsTestFile)
		assert.True(t, insight.Features.Contains(FeatureTesting))
		assert.Equal(t, models.FileTypeUnclassified, insight.Type)
	})

	t.Run("should flag tool configuration", func(t *testing.T) {
		insight := Classify("vite.config.ts", nil)

		assert.True(t, insight.IsConfigFile)
	})

	t.Run("should parse manifests from other ecosystems", func(t *testing.T) {
		content := "Django==5.0\npsycopg2\n"

		insight := Classify("requirements.txt", &content)

		assert.Equal(t, models.FileTypeManifest, insight.Type)
		assert.Equal(t, "Django", insight.Framework)
	})

	t.Run("should never fail on arbitrary input", func(t *testing.T) {
		inputs := []struct {
			path    string
			content *string
		}{
			{"", nil},
			{"", text("")},
			{"UNKNOWN.BIN", text("\x00\x01\x02")},
			{"composer.json", text("not json")},
			{"Cargo.toml", text("[[[")},
			{"pubspec.yaml", text(":\n  - :")},
			{"pom.xml", text("<project><dependencies>")},
			{"go.mod", text("module")},
		}

		for _, in := range inputs {
			assert.NotPanics(t, func() { Classify(in.path, in.content) }, in.path)
		}
	})

	t.Run("should be deterministic", func(t *testing.T) {
		content := `{"dependencies":{"next":"14","redis":"4","jsonwebtoken":"9"}}`

		first := Classify("web/package.json", &content)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify("web/package.json", &content))
		}
	})
}
