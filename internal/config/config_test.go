package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create default config when missing", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()

		// Act
		cfg, err := LoadConfig(tmpDir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, LangEN, cfg.Language)
		assert.Equal(t, AIGemini, cfg.AIConfig.ActiveAI)
		assert.Equal(t, 20, cfg.Analysis.MaxFiles)
		assert.Equal(t, 100000, cfg.Analysis.MaxFileSize)
		assert.Equal(t, filepath.Join(tmpDir, ".matereadme", "config.json"), cfg.PathFile)
		assert.Equal(t, filepath.Join(tmpDir, ".matereadme"), cfg.Dir())
		assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("should load an explicit json path and keep defaults for missing fields", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"es","analysis":{"max_files":5}}`), 0600))

		// Act
		cfg, err := LoadConfig(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, LangES, cfg.Language)
		assert.Equal(t, 5, cfg.Analysis.MaxFiles)
		assert.Equal(t, 4, cfg.Analysis.Concurrency)
		assert.InDelta(t, 0.6, cfg.Generation.Temperature, 0.0001)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should reject invalid configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data, _ := json.Marshal(map[string]any{"language": "fr"})
		require.NoError(t, os.WriteFile(path, data, 0600))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("should fail on malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{malformed json"), 0600))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should round trip through disk", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := DefaultConfig(path)
		cfg.GitHubToken = "ghp_test"

		// Act
		err := SaveConfig(cfg)
		loaded, loadErr := LoadConfig(path)

		// Assert
		require.NoError(t, err)
		require.NoError(t, loadErr)
		assert.Equal(t, "ghp_test", loaded.GitHubToken)
	})

	t.Run("should fail without path", func(t *testing.T) {
		cfg := DefaultConfig("")

		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("should validate before saving", func(t *testing.T) {
		cfg := DefaultConfig(filepath.Join(t.TempDir(), "config.json"))
		cfg.Analysis.Concurrency = 0

		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("should reject a file budget above 20", func(t *testing.T) {
		cfg := DefaultConfig(filepath.Join(t.TempDir(), "config.json"))
		cfg.Analysis.MaxFiles = 21

		assert.Error(t, SaveConfig(cfg))
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("should override token, provider and keys", func(t *testing.T) {
		// Arrange
		t.Setenv(EnvGitHubToken, "env-token")
		t.Setenv(EnvActiveAI, "groq")
		t.Setenv(EnvGroqKey, "gsk_env")
		t.Setenv(EnvLanguage, "es")
		cfg := DefaultConfig("")

		// Act
		cfg.ApplyEnv()

		// Assert
		assert.Equal(t, "env-token", cfg.GitHubToken)
		assert.Equal(t, AIGroq, cfg.AIConfig.ActiveAI)
		assert.Equal(t, "gsk_env", cfg.AIProviders["groq"].APIKey)
		assert.Equal(t, LangES, cfg.Language)
	})

	t.Run("should ignore unsupported values", func(t *testing.T) {
		t.Setenv(EnvActiveAI, "claude")
		t.Setenv(EnvLanguage, "de")
		cfg := DefaultConfig("")

		cfg.ApplyEnv()

		assert.Equal(t, AIGemini, cfg.AIConfig.ActiveAI)
		assert.Equal(t, LangEN, cfg.Language)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("should load variables from a dotenv file", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MATEREADME_TEST_VALUE=from-dotenv\n"), 0600))
		t.Cleanup(func() { _ = os.Unsetenv("MATEREADME_TEST_VALUE") })

		// Act
		err := LoadEnv(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", os.Getenv("MATEREADME_TEST_VALUE"))
	})

	t.Run("should ignore missing files", func(t *testing.T) {
		assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "nope.env")))
	})
}

func TestActiveProvider(t *testing.T) {
	t.Run("should fill groq defaults", func(t *testing.T) {
		cfg := DefaultConfig("")
		cfg.AIConfig.ActiveAI = AIGroq
		cfg.AIProviders = map[string]AIProviderConfig{"groq": {APIKey: "k"}}

		ai, p := cfg.ActiveProvider()

		assert.Equal(t, AIGroq, ai)
		assert.Equal(t, "k", p.APIKey)
		assert.Equal(t, string(ModelGroqQwen3), p.Model)
		assert.Equal(t, string(ModelGroqLlama31), p.EnhancedModel)
		assert.Equal(t, "https://api.groq.com/openai/v1", p.BaseURL)
	})
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "language", key: "lang", value: "es",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "es", cfg.Language) },
		},
		{name: "invalid language", key: "language", value: "xx", wantErr: true},
		{
			name: "provider", key: "ai", value: "openai",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, AIOpenAI, cfg.AIConfig.ActiveAI) },
		},
		{name: "unsupported provider", key: "ai", value: "llama.cpp", wantErr: true},
		{
			name: "api key goes to active provider", key: "api_key", value: "secret",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "secret", cfg.AIProviders["gemini"].APIKey) },
		},
		{
			name: "concurrency", key: "concurrency", value: "8",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 8, cfg.Analysis.Concurrency) },
		},
		{name: "negative max files", key: "max_files", value: "-1", wantErr: true},
		{name: "max files above budget", key: "max_files", value: "50", wantErr: true},
		{
			name: "lower max files", key: "max_files", value: "10",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 10, cfg.Analysis.MaxFiles) },
		},
		{
			name: "temperature", key: "temperature", value: "0.2",
			check: func(t *testing.T, cfg *Config) { assert.InDelta(t, 0.2, cfg.Generation.Temperature, 0.0001) },
		},
		{name: "top_p out of range", key: "top_p", value: "1.5", wantErr: true},
		{
			name: "cache disabled", key: "cache_ttl_hours", value: "0",
			check: func(t *testing.T, cfg *Config) { assert.Zero(t, cfg.CacheTTL()) },
		},
		{name: "negative cache ttl", key: "cache_ttl", value: "-2", wantErr: true},
		{name: "unknown key", key: "emoji", value: "true", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig("")

			err := cfg.SetValue(tt.key, tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}

	t.Run("unknown key maps to sentinel", func(t *testing.T) {
		err := DefaultConfig("").SetValue("nope", "1")

		assert.True(t, errors.Is(err, domainErrors.ErrInvalidConfigKey))
	})
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "****", MaskSecret("abc"))
	assert.Equal(t, "********wxyz", MaskSecret("ghp_abcdwxyz"))
}
