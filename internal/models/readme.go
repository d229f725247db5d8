package models

// PersonalizationContext holds the labels that steer the tone of the README.
type PersonalizationContext struct {
	ProjectType        string `json:"project_type"`
	InstallationMethod string `json:"installation_method"`
	UsagePattern       string `json:"usage_pattern"`
}

type FeatureRow struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PresentationArtifacts is pre-rendered markdown handed to the model for verbatim reuse.
type PresentationArtifacts struct {
	Badges       []string     `json:"badges"`
	StatusBadges []string     `json:"status_badges"`
	Features     []FeatureRow `json:"features"`
}

// PromptMode selects which prompt document is assembled.
type PromptMode string

const (
	PromptModeEnhanced PromptMode = "enhanced"
	PromptModeBasic    PromptMode = "basic"
	PromptModeCustom   PromptMode = "custom"
)

// PromptDocument is a complete request for the completion service.
type PromptDocument struct {
	Mode   PromptMode `json:"mode"`
	System string     `json:"system"`
	User   string     `json:"user"`
}

type ModelParams struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

type Completion struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
	// Cached is set when the text was served from the local completion cache.
	Cached bool `json:"-"`
}

// GenerateOptions are the caller-controlled knobs of a README generation.
type GenerateOptions struct {
	CustomInstruction   string
	UseEnhancedAnalysis bool
	Language            string
}

// GenerationResult is returned by a README generation. Analysis is nil when
// enhanced analysis was not requested or could not complete.
type GenerationResult struct {
	Content         string                  `json:"content"`
	Mode            PromptMode              `json:"mode"`
	Analysis        *RepositoryAnalysis     `json:"analysis,omitempty"`
	Personalization *PersonalizationContext `json:"personalization,omitempty"`
	Repository      RepositorySummary       `json:"repository"`
	Provider        string                  `json:"provider"`
	Usage           *TokenUsage             `json:"usage,omitempty"`
	Cached          bool                    `json:"cached"`
}

// AnalysisReport is the output of an analysis-only run.
type AnalysisReport struct {
	Repository      RepositorySummary      `json:"repository"`
	Analysis        *RepositoryAnalysis    `json:"analysis"`
	Personalization PersonalizationContext `json:"personalization"`
	Presentation    PresentationArtifacts  `json:"presentation"`
}

// PublishResult describes a README commit written back to the repository.
type PublishResult struct {
	Path      string `json:"path"`
	CommitSHA string `json:"commit_sha"`
	HTMLURL   string `json:"html_url"`
	Created   bool   `json:"created"`
}

type ProgressStage string

const (
	ProgressFetchingMetadata ProgressStage = "fetching_metadata"
	ProgressAnalyzing        ProgressStage = "analyzing"
	ProgressAnalysisFallback ProgressStage = "analysis_fallback"
	ProgressGenerating       ProgressStage = "generating"
)

// ProgressEvent reports the stage a generation has reached.
type ProgressEvent struct {
	Stage ProgressStage
	Mode  PromptMode
	Err   error
}
