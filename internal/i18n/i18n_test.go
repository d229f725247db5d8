package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewTranslations(t *testing.T) {
	t.Run("should load embedded catalogs without a directory", func(t *testing.T) {
		// Act
		trans, err := NewTranslations("en", "")

		// Assert
		require.NoError(t, err)
		assert.NotContains(t, trans.GetMessage("app_usage", 0, nil), "Translation missing")
	})

	t.Run("should fail with empty language", func(t *testing.T) {
		trans, err := NewTranslations("", "")

		assert.Error(t, err)
		assert.Nil(t, trans)
	})

	t.Run("should let directory files override embedded messages", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.en.toml", `
		[app_usage]
		other = "Overridden"`)

		// Act
		trans, err := NewTranslations("en", tmpDir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Overridden", trans.GetMessage("app_usage", 0, nil))
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("should switch to spanish", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		err = trans.SetLanguage("es")

		assert.NoError(t, err)
		assert.NotEqual(t, trans.GetMessage("app_usage", 0, nil), "")
	})

	t.Run("should fail with unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
	})
}

func TestGetMessage(t *testing.T) {
	tmpDir := t.TempDir()
	createTestFile(t, tmpDir, "active.es.toml", `
	[Welcome]
	one = "Bienvenido"
	other = "Bienvenidos"

	[HelloName]
	other = "¡Hola {{.Name}}!"`)

	trans, err := NewTranslations("es", tmpDir)
	require.NoError(t, err)

	t.Run("should pick singular form", func(t *testing.T) {
		assert.Equal(t, "Bienvenido", trans.GetMessage("Welcome", 1, nil))
	})

	t.Run("should pick plural form", func(t *testing.T) {
		assert.Equal(t, "Bienvenidos", trans.GetMessage("Welcome", 2, nil))
	})

	t.Run("should render template data", func(t *testing.T) {
		assert.Equal(t, "¡Hola Juan!", trans.GetMessage("HelloName", 0, map[string]interface{}{"Name": "Juan"}))
	})

	t.Run("should report missing messages", func(t *testing.T) {
		assert.Equal(t, "Translation missing: NonExistent", trans.GetMessage("NonExistent", 1, nil))
	})

	t.Run("should fall back to english for messages missing in spanish", func(t *testing.T) {
		assert.NotContains(t, trans.GetMessage("ui.analyzing_repository", 0, map[string]interface{}{"Repo": "a/b"}), "Translation missing")
	})
}

func TestEmbeddedCatalogsAreInSync(t *testing.T) {
	en, err := NewTranslations("en", "")
	require.NoError(t, err)
	es, err := NewTranslations("es", "")
	require.NoError(t, err)

	for _, id := range []string{"app_usage", "generate.usage", "analyze.usage", "repos.usage", "config.usage"} {
		t.Run(id, func(t *testing.T) {
			assert.NotContains(t, en.GetMessage(id, 0, nil), "Translation missing")
			assert.NotContains(t, es.GetMessage(id, 0, nil), "Translation missing")
		})
	}
}
