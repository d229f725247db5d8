package ai

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func sampleInput() AssembleInput {
	return AssembleInput{
		Metadata: models.RepositoryMetadata{
			Name:        "shop",
			Owner:       "octocat",
			Description: strPtr("An online shop"),
			Language:    strPtr("TypeScript"),
			Topics:      []string{"ecommerce", "nextjs"},
			Stars:       12,
			Forks:       3,
			URL:         "https://github.com/octocat/shop",
			CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Analysis: &models.RepositoryAnalysis{
			Frameworks:   models.Set{"Next.js"},
			Dependencies: models.Set{"next", "react", "pg"},
			Features:     models.Set{"PostgreSQL database"},
			HasTests:     true,
			TreeSize:     87,
		},
		Personalization: models.PersonalizationContext{
			ProjectType:        "Next.js Application",
			InstallationMethod: "npm/yarn installation",
			UsagePattern:       "Web Component/Application Usage",
		},
		Presentation: models.PresentationArtifacts{
			Badges:       []string{"![TypeScript](x)", "![Next.js](y)"},
			StatusBadges: []string{"![License](1)", "![Stars](2)", "![Forks](3)", "![Version](4)", "![Issues](5)"},
			Features: []models.FeatureRow{
				{Icon: "🔧", Name: "TypeScript Implementation", Description: "Built with TypeScript", Status: "✅ Complete"},
			},
		},
		Language: "en",
	}
}

func TestRenderPrompt(t *testing.T) {
	t.Run("should render data", func(t *testing.T) {
		out, err := RenderPrompt("t", "Hello {{.Name}}", PromptData{Name: "shop"})

		require.NoError(t, err)
		assert.Equal(t, "Hello shop", out)
	})

	t.Run("should fail on invalid templates", func(t *testing.T) {
		_, err := RenderPrompt("t", "{{.Name", PromptData{})

		assert.Error(t, err)
	})
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name      string
		enhanced  bool
		available bool
		custom    string
		want      models.PromptMode
	}{
		{"enhanced with analysis", true, true, "", models.PromptModeEnhanced},
		{"enhanced with analysis and instruction", true, true, "add a FAQ", models.PromptModeEnhanced},
		{"analysis failed with instruction", true, false, "add a FAQ", models.PromptModeCustom},
		{"analysis failed", true, false, "", models.PromptModeBasic},
		{"analysis declined", false, false, "", models.PromptModeBasic},
		{"analysis declined with instruction", false, true, "dark theme", models.PromptModeCustom},
		{"blank instruction", false, false, "   ", models.PromptModeBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectMode(tt.enhanced, tt.available, tt.custom))
		})
	}
}

func TestAssembleEnhanced(t *testing.T) {
	t.Run("should embed metadata, analysis and pre-rendered components", func(t *testing.T) {
		// Arrange
		in := sampleInput()
		in.CustomInstruction = "Mention the Stripe integration"

		// Act
		doc, err := AssembleEnhanced(in)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.PromptModeEnhanced, doc.Mode)
		assert.Equal(t, enhancedSystemPrompt, doc.System)
		assert.Contains(t, doc.User, "- **Name**: shop")
		assert.Contains(t, doc.User, "- **Topics**: ecommerce, nextjs")
		assert.Contains(t, doc.User, "- **Created**: 2024-03-01")
		assert.Contains(t, doc.User, "- **Last Updated**: Not specified")
		assert.Contains(t, doc.User, "- **Frameworks**: Next.js")
		assert.Contains(t, doc.User, "- **Has Testing**: Yes")
		assert.Contains(t, doc.User, "- **Has Docker**: No")
		assert.Contains(t, doc.User, "- **File Count**: 87 files analyzed")
		assert.Contains(t, doc.User, "- 🔧 **TypeScript Implementation**: Built with TypeScript (✅ Complete)")
		assert.Contains(t, doc.User, "| 🔧 **TypeScript Implementation** | Built with TypeScript | ✅ Complete |")
		assert.Contains(t, doc.User, "## Custom Requirements:\nMention the Stripe integration")
		assert.Contains(t, doc.User, "![License](1)\n![Stars](2)\n![Forks](3)\n![Version](4)\n\n<!-- ACTIVITY BADGES ROW -->\n![Issues](5)")
		assert.Contains(t, doc.User, "[Live Demo](https://github.com/octocat/shop)")
		assert.Contains(t, doc.User, "Write all prose in English")
	})

	t.Run("should derive exclusion directives from flags", func(t *testing.T) {
		doc, err := AssembleEnhanced(sampleInput())

		require.NoError(t, err)
		assert.Contains(t, doc.User, "NEVER mention Docker/Containerization")
		assert.Contains(t, doc.User, "NEVER mention CI/CD")
		assert.Contains(t, doc.User, "NEVER mention API documentation")
		assert.Contains(t, doc.User, "Testing is present")
		assert.Contains(t, doc.User, "7. **🧪 Testing**")
		assert.NotContains(t, doc.User, "**🐳 Docker**")
		assert.Contains(t, doc.User, "10. **📄 License**")
	})

	t.Run("should cap key dependencies at twenty", func(t *testing.T) {
		in := sampleInput()
		in.Analysis.Dependencies = nil
		for i := 0; i < 30; i++ {
			in.Analysis.Dependencies = in.Analysis.Dependencies.Add(string(rune('a'+i%26)) + strings.Repeat("x", i/26))
		}

		doc, err := AssembleEnhanced(in)

		require.NoError(t, err)
		line := lineWithPrefix(doc.User, "- **Key Dependencies**: ")
		assert.Len(t, strings.Split(line, ", "), 20)
	})

	t.Run("should render without analysis", func(t *testing.T) {
		in := sampleInput()
		in.Analysis = nil

		doc, err := AssembleEnhanced(in)

		require.NoError(t, err)
		assert.Contains(t, doc.User, "Repository analysis not available")
		assert.NotContains(t, doc.User, "Has Testing")
		assert.NotContains(t, doc.User, "## Custom Requirements:")
	})

	t.Run("should use homepage and language directive", func(t *testing.T) {
		in := sampleInput()
		in.Metadata.Homepage = strPtr("https://shop.example.com")
		in.Metadata.Description = nil
		in.Language = "es"

		doc, err := AssembleEnhanced(in)

		require.NoError(t, err)
		assert.Contains(t, doc.User, "[Live Demo](https://shop.example.com)")
		assert.Contains(t, doc.User, "*A modern, feature-rich application built with cutting-edge technologies*")
		assert.Contains(t, doc.User, "- **Description**: No description provided")
		assert.Contains(t, doc.User, "Write all prose in Spanish")
	})
}

func TestAssembleBasic(t *testing.T) {
	doc, err := AssembleBasic(sampleInput())

	require.NoError(t, err)
	assert.Equal(t, models.PromptModeBasic, doc.Mode)
	assert.Equal(t, basicSystemPrompt, doc.System)
	assert.Contains(t, doc.User, "- Name: shop")
	assert.Contains(t, doc.User, "- License: Not specified")
	assert.NotContains(t, doc.User, "Deep Code Analysis")
	assert.NotContains(t, doc.User, "Next.js")
}

func TestAssembleCustom(t *testing.T) {
	in := sampleInput()
	in.CustomInstruction = "  Keep it short  "

	doc, err := AssembleCustom(in)

	require.NoError(t, err)
	assert.Equal(t, models.PromptModeCustom, doc.Mode)
	assert.Equal(t, customSystemPrompt, doc.System)
	assert.True(t, strings.HasPrefix(doc.User, `Generate a modern, visually stunning README.md file with this custom request: "Keep it short"`))
	assert.Contains(t, doc.User, "- URL: https://github.com/octocat/shop")
	assert.NotContains(t, doc.User, "Deep Code Analysis")
}

func TestAssemble(t *testing.T) {
	t.Run("should dispatch by mode", func(t *testing.T) {
		for _, mode := range []models.PromptMode{models.PromptModeEnhanced, models.PromptModeBasic, models.PromptModeCustom} {
			doc, err := Assemble(mode, sampleInput())

			require.NoError(t, err)
			assert.Equal(t, mode, doc.Mode)
		}
	})

	t.Run("should reject unknown modes", func(t *testing.T) {
		_, err := Assemble("verbose", sampleInput())

		assert.True(t, errors.Is(err, domainErrors.ErrTemplateRender))
	})
}

func TestCleanCompletion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "# Title\n\nBody", "# Title\n\nBody"},
		{"think block", "<think>\nplanning the sections\n</think>\n\n# Title", "# Title"},
		{"markdown fence", "```markdown\n# Title\n```", "# Title"},
		{"bare fence", "```\n# Title\n```\n", "# Title"},
		{"inner fences kept", "# Title\n\n```bash\nnpm i\n```", "# Title\n\n```bash\nnpm i\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanCompletion(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject empty output", func(t *testing.T) {
		_, err := CleanCompletion("<think>only thoughts</think>  ")

		assert.True(t, errors.Is(err, domainErrors.ErrInvalidAIOutput))
	})
}

func lineWithPrefix(text, prefix string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return ""
}
