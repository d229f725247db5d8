package analysis

import (
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// frameworkRule maps a dependency predicate to a framework label.
type frameworkRule struct {
	Label string
	Match func(deps models.Set) bool
}

func dependsOn(names ...string) func(models.Set) bool {
	return func(deps models.Set) bool {
		return deps.ContainsAny(names...)
	}
}

// frameworkRules are evaluated in order and the last match wins, so a
// manifest with both react and express is labelled Express.js.
var frameworkRules = []frameworkRule{
	{Label: "React", Match: dependsOn("react")},
	{Label: "Next.js", Match: dependsOn("next")},
	{Label: "Vue.js", Match: dependsOn("vue")},
	{Label: "Angular", Match: dependsOn("angular", "@angular/core")},
	{Label: "Express.js", Match: dependsOn("express")},
	{Label: "Fastify", Match: dependsOn("fastify")},
	{Label: "Django", Match: dependsOn("django")},
	{Label: "Flask", Match: dependsOn("flask")},
}

// signalRule tags a feature when any needle occurs in the lower-cased text.
type signalRule struct {
	Feature string
	Needles []string
}

func (r signalRule) matches(lower string) bool {
	for _, n := range r.Needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

const (
	FeatureDocker  = "Docker containerization"
	FeatureTesting = "Testing suite"
	FeatureCICD    = "CI/CD pipeline"
)

// contentSignals are matched independently; plain substring matching means
// short needles such as "pg" or "hash" can fire on unrelated text.
var contentSignals = []signalRule{
	{Feature: "MongoDB database", Needles: []string{"mongodb", "mongoose"}},
	{Feature: "PostgreSQL database", Needles: []string{"postgresql", "pg", "psql"}},
	{Feature: "MySQL database", Needles: []string{"mysql", "mariadb"}},
	{Feature: "Redis caching", Needles: []string{"redis"}},
	{Feature: "JWT authentication", Needles: []string{"jwt", "jsonwebtoken"}},
	{Feature: "OAuth authentication", Needles: []string{"passport", "oauth"}},
	{Feature: "Password hashing", Needles: []string{"bcrypt", "hash"}},
	{Feature: "GraphQL API", Needles: []string{"graphql", "apollo"}},
	{Feature: "API documentation", Needles: []string{"swagger", "openapi"}},
	{Feature: "CORS support", Needles: []string{"cors"}},
	{Feature: "TypeScript support", Needles: []string{"typescript"}},
	{Feature: "CSS framework", Needles: []string{"tailwind", "bootstrap"}},
	{Feature: "Progressive Web App", Needles: []string{"pwa", "service-worker"}},
	{Feature: "Unit testing", Needles: []string{"jest", "mocha", "vitest"}},
	{Feature: "E2E testing", Needles: []string{"cypress", "playwright"}},
	{Feature: FeatureCICD, Needles: []string{"github actions", "ci/cd"}},
	{Feature: "Kubernetes deployment", Needles: []string{"kubernetes", "k8s"}},
}

var (
	containerMarkers  = []string{"dockerfile", "docker-compose"}
	docMarkers        = []string{"readme", ".md"}
	testMarkers       = []string{"test", "spec"}
	toolConfigMarkers = []string{"eslint", "prettier", "babel", "webpack", "vite", "rollup", "tsconfig", "tailwind"}
)

// Tree-level markers, matched against every path in the listing.
var (
	treeCICDMarkers      = []string{".github/workflows", ".gitlab-ci", "jenkins", "azure-pipelines", ".circleci"}
	treeContainerMarkers = []string{"dockerfile", "docker-compose", ".dockerignore"}
	treeTestMarkers      = []string{"test", "spec", "__test__", ".test.", ".spec."}
)

// installMarkers are build files recorded as manifests for installation
// hints even though no dependencies are read from them.
var installMarkers = []string{"setup.py", "build.gradle", "build.gradle.kts", "makefile"}

// Candidate allow-list for content analysis.
var (
	candidateMarkers = []string{
		"package.json", "dockerfile", "docker-compose", "requirements.txt", "composer.json",
		"pom.xml", "cargo.toml", "go.mod", "pyproject.toml", "pubspec.yaml",
		".yml", ".yaml", ".github/workflows", "readme", "license", "test", "spec",
	}
	candidateSuffixes = []string{".py", ".js", ".ts", ".tsx", ".jsx", ".go", ".rs"}
)

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
