package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/models"
)

const (
	maxKeyDependencies = 20
	statusBadgeCount   = 4

	noDescription     = "No description provided"
	notSpecified      = "Not specified"
	noneValue         = "None"
	noneDetected      = "None detected"
	headerDescription = "A modern, feature-rich application built with cutting-edge technologies"
	dateLayout        = "2006-01-02"
)

// AssembleInput is everything the prompt documents are built from.
type AssembleInput struct {
	Metadata          models.RepositoryMetadata
	Analysis          *models.RepositoryAnalysis
	Personalization   models.PersonalizationContext
	Presentation      models.PresentationArtifacts
	CustomInstruction string
	Language          string
}

// SelectMode picks the prompt mode. Enhanced requires a completed analysis;
// otherwise a custom instruction selects Custom and its absence selects Basic.
func SelectMode(useEnhanced, analysisAvailable bool, customInstruction string) models.PromptMode {
	switch {
	case useEnhanced && analysisAvailable:
		return models.PromptModeEnhanced
	case strings.TrimSpace(customInstruction) != "":
		return models.PromptModeCustom
	default:
		return models.PromptModeBasic
	}
}

func Assemble(mode models.PromptMode, in AssembleInput) (models.PromptDocument, error) {
	switch mode {
	case models.PromptModeEnhanced:
		return AssembleEnhanced(in)
	case models.PromptModeCustom:
		return AssembleCustom(in)
	case models.PromptModeBasic:
		return AssembleBasic(in)
	default:
		return models.PromptDocument{}, domainErrors.ErrTemplateRender.
			WithError(fmt.Errorf("unknown prompt mode %q", mode))
	}
}

// AssembleEnhanced builds the analysis-grounded document. A nil analysis is
// rendered as "not available" with every capability treated as absent.
func AssembleEnhanced(in AssembleInput) (models.PromptDocument, error) {
	data := metadataData(in)
	data.ProjectType = in.Personalization.ProjectType
	data.InstallationMethod = in.Personalization.InstallationMethod
	data.UsagePattern = in.Personalization.UsagePattern
	data.TechBadges = strings.Join(in.Presentation.Badges, "\n")
	data.FeatureRows = in.Presentation.Features
	data.StatusRow, data.ActivityRow = splitStatusBadges(in.Presentation.StatusBadges)
	data.CustomPrompt = strings.TrimSpace(in.CustomInstruction)

	if a := in.Analysis; a != nil {
		data.HasAnalysis = true
		data.Frameworks = joinOr(a.Frameworks, noneDetected)
		data.KeyDependencies = joinOr(firstN(a.Dependencies, maxKeyDependencies), noneDetected)
		data.Features = joinOr(a.Features, noneDetected)
		data.HasTests = a.HasTests
		data.HasDocker = a.HasDocker
		data.HasCICD = a.HasCICD
		data.FileCount = a.TreeSize
	}
	data.Directives = exclusionDirectives(in.Analysis, in.Personalization.ProjectType)
	data.Sections = sectionPlan(data)

	return render(models.PromptModeEnhanced, enhancedSystemPrompt, enhancedPromptTemplate, data)
}

// AssembleBasic builds the metadata-only document.
func AssembleBasic(in AssembleInput) (models.PromptDocument, error) {
	return render(models.PromptModeBasic, basicSystemPrompt, basicPromptTemplate, metadataData(in))
}

// AssembleCustom builds the document carrying the user's literal request.
func AssembleCustom(in AssembleInput) (models.PromptDocument, error) {
	data := metadataData(in)
	data.CustomPrompt = strings.TrimSpace(in.CustomInstruction)
	return render(models.PromptModeCustom, customSystemPrompt, customPromptTemplate, data)
}

func render(mode models.PromptMode, system, tmpl string, data PromptData) (models.PromptDocument, error) {
	user, err := RenderPrompt(string(mode)+"Prompt", tmpl, data)
	if err != nil {
		return models.PromptDocument{}, domainErrors.ErrTemplateRender.
			WithError(err).
			WithContext("mode", string(mode))
	}
	return models.PromptDocument{Mode: mode, System: system, User: user}, nil
}

func metadataData(in AssembleInput) PromptData {
	m := in.Metadata
	data := PromptData{
		Name:              m.Name,
		Description:       m.DescriptionOr(noDescription),
		HeaderDescription: m.DescriptionOr(headerDescription),
		Language:          m.LanguageOr(notSpecified),
		Topics:            joinOr(m.Topics, noneValue),
		License:           m.LicenseOr(notSpecified),
		Stars:             m.Stars,
		Forks:             m.Forks,
		Owner:             m.Owner,
		URL:               m.URL,
		Homepage:          notSpecified,
		LiveDemoURL:       m.URL,
		Created:           formatDate(m.CreatedAt),
		Updated:           formatDate(m.UpdatedAt),
		OutputLang:        config.LanguageName(in.Language),
	}
	if m.Homepage != nil && *m.Homepage != "" {
		data.Homepage = *m.Homepage
		data.LiveDemoURL = *m.Homepage
	}
	return data
}

func exclusionDirectives(a *models.RepositoryAnalysis, projectType string) []string {
	var hasTests, hasDocker, hasCICD bool
	if a != nil {
		hasTests, hasDocker, hasCICD = a.HasTests, a.HasDocker, a.HasCICD
	}
	hasAPI := a.HasFeatureContaining("API") || strings.Contains(projectType, "API")

	return []string{
		flagDirective(hasDocker, "Docker/Containerization"),
		flagDirective(hasTests, "Testing"),
		flagDirective(hasCICD, "CI/CD"),
		flagDirective(hasAPI, "API documentation"),
		"NEVER include features that don't exist in the codebase",
		"ONLY include sections for features that are actually present",
	}
}

func flagDirective(present bool, topic string) string {
	if present {
		return fmt.Sprintf("%s is present in this repository: document it accurately", topic)
	}
	return fmt.Sprintf("NEVER mention %s: it was not detected in this repository", topic)
}

func sectionPlan(d PromptData) []string {
	candidates := []struct {
		include bool
		text    string
	}{
		{true, "**📑 Table of Contents** (always include)"},
		{true, "**🎯 About The Project** (always include - write 2-3 detailed paragraphs explaining what the project does, its purpose, and value proposition)"},
		{len(d.FeatureRows) > 0, "**✨ Key Features** (use the pre-generated feature table data above formatted as a table)"},
		{true, "**🛠️ Built With** (use pre-generated technology badges, organize by categories)"},
		{true, fmt.Sprintf("**🚀 Getting Started** (complete installation guide based on %s)", d.InstallationMethod)},
		{true, fmt.Sprintf("**💻 Usage** (real code examples based on %s)", d.UsagePattern)},
		{d.HasTests, "**🧪 Testing**"},
		{d.HasDocker, "**🐳 Docker**"},
		{d.HasCICD, "**🔄 CI/CD**"},
		{true, "**🤝 Contributing** (detailed guidelines)"},
		{true, "**⭐ Show Your Support** (support section)"},
		{true, "**📄 License** (license information)"},
	}

	var out []string
	for _, c := range candidates {
		if c.include {
			out = append(out, fmt.Sprintf("%d. %s", len(out)+1, c.text))
		}
	}
	return out
}

func splitStatusBadges(badges []string) (string, string) {
	if len(badges) <= statusBadgeCount {
		return strings.Join(badges, "\n"), ""
	}
	return strings.Join(badges[:statusBadgeCount], "\n"), strings.Join(badges[statusBadgeCount:], "\n")
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return notSpecified
	}
	return t.Format(dateLayout)
}
