package presentation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

const shieldsBase = "https://img.shields.io"

// Badge describes one shields.io static badge.
type Badge struct {
	Label     string
	Color     string
	Logo      string
	LogoColor string
}

// Markdown renders the badge as a markdown image.
func (b Badge) Markdown() string {
	label := strings.ReplaceAll(b.Label, " ", "_")
	label = strings.ReplaceAll(label, "-", "--")
	return fmt.Sprintf("![%s](%s/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=%s)",
		b.Label, shieldsBase, label, b.Color, b.Logo, b.LogoColor)
}

var languageBadges = map[string]Badge{
	"javascript": {"JavaScript", "F7DF1E", "javascript", "black"},
	"typescript": {"TypeScript", "007ACC", "typescript", "white"},
	"python":     {"Python", "3776AB", "python", "white"},
	"java":       {"Java", "ED8B00", "java", "white"},
	"go":         {"Go", "00ADD8", "go", "white"},
	"rust":       {"Rust", "000000", "rust", "white"},
	"php":        {"PHP", "777BB4", "php", "white"},
}

// Iteration order of these tables fixes badge order.
var frameworkBadges = []struct {
	Framework string
	Badge     Badge
}{
	{"React", Badge{"React", "20232A", "react", "61DAFB"}},
	{"Next.js", Badge{"Next.js", "000000", "next.js", "white"}},
	{"Vue.js", Badge{"Vue.js", "35495E", "vue.js", "4FC08D"}},
	{"Angular", Badge{"Angular", "DD0031", "angular", "white"}},
	{"Express.js", Badge{"Express.js", "000000", "express", "white"}},
	{"Fastify", Badge{"Fastify", "000000", "fastify", "white"}},
	{"Django", Badge{"Django", "092E20", "django", "white"}},
	{"Flask", Badge{"Flask", "000000", "flask", "white"}},
}

type dependencyBadge struct {
	Dependencies []string
	Badge        Badge
}

var datastoreBadges = []dependencyBadge{
	{[]string{"mongodb", "mongoose"}, Badge{"MongoDB", "4EA94B", "mongodb", "white"}},
	{[]string{"postgresql", "pg"}, Badge{"PostgreSQL", "316192", "postgresql", "white"}},
	{[]string{"mysql"}, Badge{"MySQL", "00000F", "mysql", "white"}},
	{[]string{"redis"}, Badge{"Redis", "DC382D", "redis", "white"}},
}

var toolBadges = []dependencyBadge{
	{[]string{"tailwindcss", "tailwind"}, Badge{"Tailwind CSS", "38B2AC", "tailwind-css", "white"}},
	{[]string{"bootstrap"}, Badge{"Bootstrap", "563D7C", "bootstrap", "white"}},
}

var dockerBadge = Badge{"Docker", "2CA5E0", "docker", "white"}

// Badges returns technology badges: language, frameworks, datastores,
// tooling, then Docker. The order depends only on the fixed tables above.
func Badges(meta models.RepositoryMetadata, analysis *models.RepositoryAnalysis) []string {
	var out []string

	if b, ok := languageBadges[strings.ToLower(meta.LanguageOr(""))]; ok {
		out = append(out, b.Markdown())
	}
	if analysis == nil {
		return out
	}

	for _, fb := range frameworkBadges {
		if analysis.Frameworks.Contains(fb.Framework) {
			out = append(out, fb.Badge.Markdown())
		}
	}
	for _, group := range [][]dependencyBadge{datastoreBadges, toolBadges} {
		for _, db := range group {
			if analysis.Dependencies.ContainsAny(db.Dependencies...) {
				out = append(out, db.Badge.Markdown())
			}
		}
	}
	if analysis.HasDocker {
		out = append(out, dockerBadge.Markdown())
	}

	return out
}

// StatusBadges returns the dynamic GitHub badges for owner/name.
func StatusBadges(meta models.RepositoryMetadata) []string {
	slug := url.PathEscape(meta.Owner) + "/" + url.PathEscape(meta.Name)
	rows := []struct {
		label, path, extra string
	}{
		{"License", "license", "color=blue"},
		{"Stars", "stars", "logo=github&color=yellow"},
		{"Forks", "forks", "logo=github&color=green"},
		{"Version", "v/release", "color=purple"},
		{"Issues", "issues", "color=red"},
		{"Contributors", "contributors", "color=orange"},
		{"Last Commit", "last-commit", "color=brightgreen"},
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, fmt.Sprintf("![%s](%s/github/%s/%s?style=for-the-badge&%s)", r.label, shieldsBase, r.path, slug, r.extra))
	}
	return out
}
