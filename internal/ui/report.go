package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/models"
)

var (
	colorAccent = lipgloss.Color("212")
	colorBorder = lipgloss.Color("62")
	colorMuted  = lipgloss.Color("245")
	colorOK     = lipgloss.Color("42")
	colorOff    = lipgloss.Color("203")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	valueStyle = lipgloss.NewStyle().Bold(true)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func flag(v bool) string {
	if v {
		return lipgloss.NewStyle().Foreground(colorOK).Render("✔")
	}
	return lipgloss.NewStyle().Foreground(colorOff).Render("✘")
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// RenderAnalysisReport draws the analysis, personalization and feature table
// of a repository as a set of boxes.
func RenderAnalysisReport(report *models.AnalysisReport, t *i18n.Translations) string {
	repo := report.Repository
	a := report.Analysis

	header := []string{
		titleStyle.Render(repo.FullName),
		row(t.GetMessage("report.language", 0, nil), orDash(repo.Language)),
		row(t.GetMessage("report.stars", 0, nil), fmt.Sprintf("%d", repo.Stars)),
		row(t.GetMessage("report.project_type", 0, nil), report.Personalization.ProjectType),
		row(t.GetMessage("report.installation", 0, nil), report.Personalization.InstallationMethod),
		row(t.GetMessage("report.usage_pattern", 0, nil), report.Personalization.UsagePattern),
	}
	if repo.Description != "" {
		header = append(header, lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Render(repo.Description))
	}

	sections := []string{boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header...))}

	if a != nil {
		detection := []string{
			titleStyle.Render(t.GetMessage("report.detection_title", 0, nil)),
			row(t.GetMessage("report.frameworks", 0, nil), listOrDash(a.Frameworks.Sorted())),
			row(t.GetMessage("report.features", 0, nil), listOrDash(a.Features.Sorted())),
			row(t.GetMessage("report.manifests", 0, nil), listOrDash(a.Manifests.Sorted())),
			row(t.GetMessage("report.dependencies", 0, nil), fmt.Sprintf("%d", a.Dependencies.Len())),
			row(t.GetMessage("report.tests", 0, nil), flag(a.HasTests)),
			row(t.GetMessage("report.docker", 0, nil), flag(a.HasDocker)),
			row(t.GetMessage("report.cicd", 0, nil), flag(a.HasCICD)),
			row(t.GetMessage("report.files", 0, nil), t.GetMessage("report.files_value", 0, map[string]interface{}{
				"Analyzed": len(a.Files),
				"Skipped":  len(a.Skipped),
				"Total":    a.TreeSize,
			})),
		}
		if a.Truncated {
			detection = append(detection, lipgloss.NewStyle().Foreground(colorOff).Render(t.GetMessage("report.truncated", 0, nil)))
		}
		sections = append(sections, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, detection...)))
	}

	if len(report.Presentation.Features) > 0 {
		features := []string{titleStyle.Render(t.GetMessage("report.feature_table", 0, nil))}
		for _, f := range report.Presentation.Features {
			features = append(features, fmt.Sprintf("%s %s  %s", f.Icon, valueStyle.Render(f.Name),
				lipgloss.NewStyle().Foreground(colorMuted).Render(f.Description)))
		}
		sections = append(sections, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, features...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderRepositoryList draws one line per repository: name, language, stars and last update.
func RenderRepositoryList(repos []models.RepositoryMetadata, t *i18n.Translations) string {
	if len(repos) == 0 {
		return lipgloss.NewStyle().Foreground(colorMuted).Render(t.GetMessage("repos.empty", 0, nil))
	}

	nameWidth := 0
	for _, r := range repos {
		if w := lipgloss.Width(r.FullName); w > nameWidth {
			nameWidth = w
		}
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Width(nameWidth + 2)
	langStyle := lipgloss.NewStyle().Foreground(colorAccent).Width(14)
	starStyle := lipgloss.NewStyle().Width(9)
	dateStyle := lipgloss.NewStyle().Foreground(colorMuted)

	lines := make([]string, 0, len(repos)+1)
	lines = append(lines, titleStyle.Render(t.GetMessage("repos.title", len(repos), map[string]interface{}{"Count": len(repos)})))
	for _, r := range repos {
		name := r.FullName
		if r.Private {
			name += " 🔒"
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(name),
			langStyle.Render(r.LanguageOr("-")),
			starStyle.Render(fmt.Sprintf("★ %d", r.Stars)),
			dateStyle.Render(r.UpdatedAt.Format("2006-01-02")),
		))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderGenerationSummary draws the outcome of a README generation.
func RenderGenerationSummary(result *models.GenerationResult, t *i18n.Translations) string {
	lines := []string{
		titleStyle.Render(result.Repository.FullName),
		row(t.GetMessage("report.mode", 0, nil), t.GetMessage("mode."+string(result.Mode), 0, nil)),
		row(t.GetMessage("report.provider", 0, nil), result.Provider),
	}
	if result.Personalization != nil {
		lines = append(lines, row(t.GetMessage("report.project_type", 0, nil), result.Personalization.ProjectType))
	}
	if result.Analysis != nil {
		lines = append(lines, row(t.GetMessage("report.frameworks", 0, nil), listOrDash(result.Analysis.Frameworks.Sorted())))
	}
	lines = append(lines, row(t.GetMessage("report.length", 0, nil), fmt.Sprintf("%d", len(result.Content))))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
