package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
)

type (
	Config struct {
		Language           string                      `json:"language"`
		GitHubToken        string                      `json:"github_token,omitempty"`
		AIConfig           AIConfig                    `json:"ai_config"`
		AIProviders        map[string]AIProviderConfig `json:"ai_providers"`
		Analysis           AnalysisConfig              `json:"analysis"`
		Generation         GenerationConfig            `json:"generation"`
		HTTPTimeoutSeconds int                         `json:"http_timeout_seconds"`
		PathFile           string                      `json:"path_file"`
	}

	AIConfig struct {
		ActiveAI AI `json:"active_ai"`
	}

	// AIProviderConfig holds credentials and model choices for one completion provider.
	AIProviderConfig struct {
		APIKey        string `json:"api_key,omitempty"`
		BaseURL       string `json:"base_url,omitempty"`
		Model         string `json:"model,omitempty"`
		EnhancedModel string `json:"enhanced_model,omitempty"`
	}

	// AnalysisConfig bounds the repository analysis.
	AnalysisConfig struct {
		MaxFiles    int `json:"max_files"`
		MaxFileSize int `json:"max_file_size"`
		Concurrency int `json:"concurrency"`
	}

	// GenerationConfig holds the sampling parameters sent with every completion.
	GenerationConfig struct {
		Temperature       float32 `json:"temperature"`
		TopP              float32 `json:"top_p"`
		MaxTokens         int     `json:"max_tokens"`
		EnhancedMaxTokens int     `json:"enhanced_max_tokens"`
		// CacheTTLHours keeps completions for identical prompts. 0 disables the cache.
		CacheTTLHours int `json:"cache_ttl_hours"`
	}
)

const (
	defaultLang               = LangEN
	defaultMaxFiles           = 20
	defaultMaxFileSize        = 100000
	defaultConcurrency        = 4
	defaultHTTPTimeoutSeconds = 60
	defaultTemperature        = 0.6
	defaultTopP               = 0.9
	defaultMaxTokens          = 40000
	defaultEnhancedMaxTokens  = 4000
	defaultCacheTTLHours      = 24

	configDirName  = ".matereadme"
	configFileName = "config.json"
)

// Environment variables that override the file configuration.
const (
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvGeminiKey   = "GEMINI_API_KEY"
	EnvGroqKey     = "GROQ_API_KEY"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvActiveAI    = "MATEREADME_AI"
	EnvLanguage    = "MATEREADME_LANG"
)

// LoadConfig reads the configuration file. path is either a .json file or a
// directory under which .matereadme/config.json lives. A missing file is
// created with defaults.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return CreateDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig(configPath)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a configuration populated with defaults, bound to path.
func DefaultConfig(path string) *Config {
	providers := make(map[string]AIProviderConfig)
	for _, ai := range SupportedAIs() {
		providers[string(ai)] = AIProviderConfig{
			BaseURL:       DefaultBaseURLForAI(ai),
			Model:         string(DefaultModelForAI(ai)),
			EnhancedModel: string(DefaultEnhancedModelForAI(ai)),
		}
	}

	return &Config{
		Language:    defaultLang,
		AIConfig:    AIConfig{ActiveAI: AIGemini},
		AIProviders: providers,
		Analysis: AnalysisConfig{
			MaxFiles:    defaultMaxFiles,
			MaxFileSize: defaultMaxFileSize,
			Concurrency: defaultConcurrency,
		},
		Generation: GenerationConfig{
			Temperature:       defaultTemperature,
			TopP:              defaultTopP,
			MaxTokens:         defaultMaxTokens,
			EnhancedMaxTokens: defaultEnhancedMaxTokens,
			CacheTTLHours:     defaultCacheTTLHours,
		},
		HTTPTimeoutSeconds: defaultHTTPTimeoutSeconds,
		PathFile:           path,
	}
}

func CreateDefaultConfig(path string) (*Config, error) {
	config := DefaultConfig(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not defined")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// LoadEnv loads .env files into the process environment. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("error loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables on the in-memory configuration.
// The overrides are never written back by SaveConfig callers that reload from disk.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvGitHubToken); v != "" {
		c.GitHubToken = v
	}
	if v := os.Getenv(EnvLanguage); v != "" && IsValidLanguage(v) {
		c.Language = v
	}
	if v := os.Getenv(EnvActiveAI); v != "" && IsSupportedAI(AI(v)) {
		c.AIConfig.ActiveAI = AI(v)
	}

	keys := map[AI]string{
		AIGemini: EnvGeminiKey,
		AIGroq:   EnvGroqKey,
		AIOpenAI: EnvOpenAIKey,
	}
	for ai, env := range keys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if c.AIProviders == nil {
			c.AIProviders = make(map[string]AIProviderConfig)
		}
		p := c.AIProviders[string(ai)]
		p.APIKey = v
		c.AIProviders[string(ai)] = p
	}
}

// ActiveProvider returns the configuration of the active completion provider
// with defaults filled in for anything left empty.
func (c *Config) ActiveProvider() (AI, AIProviderConfig) {
	ai := c.AIConfig.ActiveAI
	p := c.AIProviders[string(ai)]
	if p.Model == "" {
		p.Model = string(DefaultModelForAI(ai))
	}
	if p.EnhancedModel == "" {
		p.EnhancedModel = string(DefaultEnhancedModelForAI(ai))
	}
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURLForAI(ai)
	}
	return ai, p
}

// CacheTTL is how long completions are reused. Zero means no cache.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Generation.CacheTTLHours) * time.Hour
}

// Dir is the directory holding the config file, history and cache.
func (c *Config) Dir() string {
	return filepath.Dir(c.PathFile)
}

func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds <= 0 {
		return defaultHTTPTimeoutSeconds * time.Second
	}
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// SetValue updates a single setting addressed by its user-facing key.
func (c *Config) SetValue(key, value string) error {
	value = strings.TrimSpace(value)

	switch strings.ToLower(key) {
	case "lang", "language":
		if !IsValidLanguage(value) {
			return fmt.Errorf("invalid language: %s", value)
		}
		c.Language = value
	case "github_token", "token":
		c.GitHubToken = value
	case "ai", "active_ai", "provider":
		if !IsSupportedAI(AI(value)) {
			return domainErrors.ErrProviderNotSupported.WithContext("provider", value)
		}
		c.AIConfig.ActiveAI = AI(value)
	case "api_key", "model", "enhanced_model", "base_url":
		c.setProviderValue(strings.ToLower(key), value)
	case "max_files":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > defaultMaxFiles {
			return fmt.Errorf("max_files must be between 1 and %d, got %q", defaultMaxFiles, value)
		}
		c.Analysis.MaxFiles = n
	case "max_file_size":
		return setPositiveInt(&c.Analysis.MaxFileSize, value)
	case "concurrency":
		return setPositiveInt(&c.Analysis.Concurrency, value)
	case "timeout", "http_timeout_seconds":
		return setPositiveInt(&c.HTTPTimeoutSeconds, value)
	case "max_tokens":
		return setPositiveInt(&c.Generation.MaxTokens, value)
	case "enhanced_max_tokens":
		return setPositiveInt(&c.Generation.EnhancedMaxTokens, value)
	case "cache_ttl_hours", "cache_ttl":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("expected a non-negative integer, got %q", value)
		}
		c.Generation.CacheTTLHours = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil || f < 0 || f > 2 {
			return fmt.Errorf("invalid temperature: %s", value)
		}
		c.Generation.Temperature = float32(f)
	case "top_p":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil || f <= 0 || f > 1 {
			return fmt.Errorf("invalid top_p: %s", value)
		}
		c.Generation.TopP = float32(f)
	default:
		return domainErrors.ErrInvalidConfigKey.WithContext("key", key)
	}
	return nil
}

func (c *Config) setProviderValue(key, value string) {
	if c.AIProviders == nil {
		c.AIProviders = make(map[string]AIProviderConfig)
	}
	name := string(c.AIConfig.ActiveAI)
	p := c.AIProviders[name]
	switch key {
	case "api_key":
		p.APIKey = value
	case "model":
		p.Model = value
	case "enhanced_model":
		p.EnhancedModel = value
	case "base_url":
		p.BaseURL = value
	}
	c.AIProviders[name] = p
}

func setPositiveInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive integer, got %q", value)
	}
	*dst = n
	return nil
}

// MaskSecret keeps the last four characters of a credential.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsValidLanguage(config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.AIConfig.ActiveAI != "" && !IsSupportedAI(config.AIConfig.ActiveAI) {
		return fmt.Errorf("unsupported AI provider: %s", config.AIConfig.ActiveAI)
	}
	if config.Analysis.MaxFiles <= 0 || config.Analysis.MaxFiles > defaultMaxFiles {
		return fmt.Errorf("analysis.max_files must be between 1 and %d", defaultMaxFiles)
	}
	if config.Analysis.MaxFileSize <= 0 {
		return errors.New("analysis.max_file_size must be greater than 0")
	}
	if config.Analysis.Concurrency <= 0 {
		return errors.New("analysis.concurrency must be greater than 0")
	}
	if config.Generation.Temperature < 0 || config.Generation.Temperature > 2 {
		return errors.New("generation.temperature must be between 0 and 2")
	}
	if config.Generation.TopP <= 0 || config.Generation.TopP > 1 {
		return errors.New("generation.top_p must be in (0, 1]")
	}
	if config.Generation.CacheTTLHours < 0 {
		return errors.New("generation.cache_ttl_hours cannot be negative")
	}
	return nil
}
