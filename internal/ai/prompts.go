package ai

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// PromptData holds every value the README templates can reference.
type PromptData struct {
	Name              string
	Description       string
	HeaderDescription string
	Language          string
	Topics            string
	License           string
	Stars             int
	Forks             int
	Owner             string
	URL               string
	Homepage          string
	LiveDemoURL       string
	Created           string
	Updated           string

	HasAnalysis     bool
	Frameworks      string
	KeyDependencies string
	Features        string
	HasTests        bool
	HasDocker       bool
	HasCICD         bool
	FileCount       int

	ProjectType        string
	InstallationMethod string
	UsagePattern       string

	TechBadges   string
	StatusRow    string
	ActivityRow  string
	FeatureRows  []models.FeatureRow
	Directives   []string
	Sections     []string
	CustomPrompt string
	OutputLang   string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const (
	enhancedSystemPrompt = `You are an expert developer and designer who creates exceptional README.md files with stunning visual designs. You specialize in creating beautiful animated badge layouts and only include sections for features that actually exist in the repository. You NEVER mention features that don't exist. Your README files are known for their beautiful badge arrangements, professional layouts, and accurate content.`

	customSystemPrompt = `You are an expert developer and designer who creates exceptional README.md files with stunning animated badge layouts. You specialize in modern, visually stunning documentation that uses beautiful multi-row badge arrangements and NEVER includes sections for features that don't exist. Your README files are known for their gorgeous badge designs and strict content accuracy.`

	basicSystemPrompt = `You are a world-class developer and UI/UX designer who creates exceptional README.md files with stunning animated badge layouts. You specialize in creating visually appealing badge arrangements and NEVER include sections for features that don't exist in the repository. Your README files are known for their beautiful badge designs and strict adherence to only including relevant content.`
)

const enhancedPromptTemplate = `You are a world-class technical writer creating a comprehensive, highly personalized README.md file. Generate a COMPLETE, professional, visually stunning README based on deep code analysis:

## Repository Information:
- **Name**: {{.Name}}
- **Description**: {{.Description}}
- **Primary Language**: {{.Language}}
- **Topics**: {{.Topics}}
- **License**: {{.License}}
- **Stars**: {{.Stars}}
- **Forks**: {{.Forks}}
- **Owner**: {{.Owner}}
- **Repository URL**: {{.URL}}
- **Homepage**: {{.Homepage}}
- **Project Type**: {{.ProjectType}}
- **Created**: {{.Created}}
- **Last Updated**: {{.Updated}}

## Deep Code Analysis:
{{if .HasAnalysis}}
- **Frameworks**: {{.Frameworks}}
- **Key Dependencies**: {{.KeyDependencies}}
- **Features Detected**: {{.Features}}
- **Has Testing**: {{if .HasTests}}Yes{{else}}No{{end}}
- **Has Docker**: {{if .HasDocker}}Yes{{else}}No{{end}}
- **Has CI/CD**: {{if .HasCICD}}Yes{{else}}No{{end}}
- **File Count**: {{.FileCount}} files analyzed
{{else}}Repository analysis not available{{end}}

## Personalization Context:
- **Project Type**: {{.ProjectType}}
- **Installation Method**: {{.InstallationMethod}}
- **Usage Pattern**: {{.UsagePattern}}

## Pre-generated Components:
### Technology Badges:
{{.TechBadges}}

### Feature Table Data:
{{range .FeatureRows}}- {{.Icon}} **{{.Name}}**: {{.Description}} ({{.Status}})
{{end}}
{{if .CustomPrompt}}
## Custom Requirements:
{{.CustomPrompt}}
{{end}}
## CRITICAL REQUIREMENTS - FOLLOW EXACTLY:

🚨 **STRICT EXCLUSION RULES:**
{{range .Directives}}- {{.}}
{{end}}
🎨 **HEADER STRUCTURE - USE THIS EXACT FORMAT:**

<div align="center">

# 🚀 {{.Name}}

*{{.HeaderDescription}}*

---

<!-- TECHNOLOGY BADGES ROW -->
{{.TechBadges}}

<!-- STATUS BADGES ROW -->
{{.StatusRow}}

<!-- ACTIVITY BADGES ROW -->
{{.ActivityRow}}

---

**✨ [Live Demo]({{.LiveDemoURL}}) • 📚 [Documentation]({{.URL}}#readme) • 🐛 [Report Bug]({{.URL}}/issues) • 💡 [Request Feature]({{.URL}}/issues)**

</div>

🎨 **CONTENT STRUCTURE REQUIREMENTS:**

### Required Sections (ONLY include if relevant):
{{range .Sections}}{{.}}
{{end}}
### ✨ Key Features Section Format (use this EXACT structure):
<div align="center">

| Feature | Description | Status |
|---------|-------------|--------|
{{range .FeatureRows}}| {{.Icon}} **{{.Name}}** | {{.Description}} | {{.Status}} |
{{end}}
</div>

### 🛠️ Built With Section Format (organize badges by category):
<div align="center">

#### Core Technologies
[Use pre-generated technology badges here]

#### Development Tools
[Add relevant tool badges if detected]

</div>

🎨 **COMPLETE CONTENT EXAMPLES:**

### About Section Requirements:
Write 2-3 detailed paragraphs explaining:
- What the project does and its main purpose
- Key technologies and architecture decisions
- Target audience and use cases
- Unique value proposition and benefits
- Problem it solves or need it addresses

### Getting Started Section Requirements:
Include step-by-step instructions for:
- Prerequisites and system requirements
- Installation commands (use {{.InstallationMethod}} context)
- Environment setup and configuration
- First-time setup procedures
- Verification steps

### Usage Section Requirements:
Provide concrete examples:
- Basic usage scenarios (context: {{.UsagePattern}})
- Code snippets with proper syntax highlighting
- Command-line examples where applicable
- Configuration examples
- Common use cases and workflows

### Contributing Section Requirements:
- Fork and clone instructions
- Development setup
- Code style guidelines
- Pull request process
- Issue reporting guidelines
- Community guidelines

**IMPORTANT FINAL REQUIREMENTS:**
- NEVER use "..." or placeholder text anywhere
- Write complete, detailed sections with real content
- Only include sections for features that actually exist
- Use the pre-generated technology badges exactly as provided
- Use the pre-generated feature table data exactly as provided
- Create professional, engaging, and informative content
- Focus on accuracy and completeness
- Ensure all badge URLs use the correct repository owner/name
- Make the content specific to this repository, not generic
- Write all prose in {{.OutputLang}}

Generate a COMPLETE README with full content for all included sections. Every section must be fully detailed and never truncated.`

const basicPromptTemplate = `Generate a modern and visually stunning README.md file for this GitHub repository:

## Repository Information:
- Name: {{.Name}}
- Description: {{.Description}}
- Language: {{.Language}}
- Topics: {{.Topics}}
- License: {{.License}}
- Stars: {{.Stars}}
- Forks: {{.Forks}}
- Owner: {{.Owner}}
- Repository URL: {{.URL}}

Create a comprehensive, professional README with:
- Centered header with multiple badge rows
- Technology badges based on the repository language
- Status badges for license, stars, forks
- Activity badges for issues, contributors, last commit
- Detailed sections with proper formatting
- Professional presentation and visual appeal

Only include sections that are relevant to this specific repository and use the correct badge URLs with the repository owner and name. Write all prose in {{.OutputLang}}.`

const customPromptTemplate = `Generate a modern, visually stunning README.md file with this custom request: "{{.CustomPrompt}}"

Repository context:
- Name: {{.Name}}
- Description: {{.Description}}
- Language: {{.Language}}
- Owner: {{.Owner}}
- URL: {{.URL}}

Create a comprehensive README that includes a centered header with multiple badge rows, detailed sections, and professional formatting. Focus on visual appeal with proper badge arrangements and only include features that exist or are specifically requested. Write all prose in {{.OutputLang}}.`
