package personalization

import (
	"strings"

	"github.com/thomas-vilte/matereadme/internal/models"
)

// facts are the normalized inputs every decision table reads.
type facts struct {
	Language     string
	Name         string
	Description  string
	Frameworks   models.Set
	Dependencies models.Set
	Manifests    models.Set
	ProjectType  string
}

type rule struct {
	Label string
	Match func(f facts) bool
}

// firstMatch returns the label of the first matching rule, or fallback.
func firstMatch(rules []rule, f facts, fallback string) string {
	for _, r := range rules {
		if r.Match(f) {
			return r.Label
		}
	}
	return fallback
}

func framework(name string) func(facts) bool {
	return func(f facts) bool { return f.Frameworks.Contains(name) }
}

func language(names ...string) func(facts) bool {
	return func(f facts) bool {
		for _, n := range names {
			if f.Language == n {
				return true
			}
		}
		return false
	}
}

func languageWithDependency(lang, dep string) func(facts) bool {
	return func(f facts) bool { return f.Language == lang && f.Dependencies.Contains(dep) }
}

func jsWithDependency(dep string) func(facts) bool {
	return func(f facts) bool {
		return (f.Language == "javascript" || f.Language == "typescript") && f.Dependencies.Contains(dep)
	}
}

func nameOrDescription(nameNeedle, descNeedle string) func(facts) bool {
	return func(f facts) bool {
		return strings.Contains(f.Name, nameNeedle) || strings.Contains(f.Description, descNeedle)
	}
}

func projectTypeContains(fragments ...string) func(facts) bool {
	return func(f facts) bool {
		for _, frag := range fragments {
			if strings.Contains(f.ProjectType, frag) {
				return true
			}
		}
		return false
	}
}

func hasManifest(names ...string) func(facts) bool {
	return func(f facts) bool { return f.Manifests.ContainsAny(names...) }
}

func and(preds ...func(facts) bool) func(facts) bool {
	return func(f facts) bool {
		for _, p := range preds {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

const (
	FallbackProjectType  = "Software Project"
	FallbackUsage        = "General Usage"
	FallbackInstallation = "Manual installation"
)

var projectTypeRules = []rule{
	// frameworks
	{"Next.js Application", framework("Next.js")},
	{"React Application", framework("React")},
	{"Vue.js Application", framework("Vue.js")},
	{"Angular Application", framework("Angular")},
	{"Express.js API", framework("Express.js")},
	{"Fastify API", framework("Fastify")},
	{"Django Application", framework("Django")},
	{"Flask Application", framework("Flask")},

	// languages
	{"React Application", jsWithDependency("react")},
	{"Node.js API", jsWithDependency("express")},
	{"JavaScript Application", language("javascript", "typescript")},
	{"Django Application", languageWithDependency("python", "django")},
	{"Flask Application", languageWithDependency("python", "flask")},
	{"FastAPI Application", languageWithDependency("python", "fastapi")},
	{"Python Application", language("python")},
	{"Java Application", language("java")},
	{"Go Application", language("go")},
	{"Rust Application", language("rust")},
	{"C++ Application", language("c++")},

	// name and description keywords
	{"API Service", nameOrDescription("api", "api")},
	{"CLI Tool", nameOrDescription("cli", "command")},
	{"Library", nameOrDescription("lib", "library")},
	{"Bot Application", nameOrDescription("bot", "bot")},
	{"Website", nameOrDescription("website", "website")},
	{"Application", nameOrDescription("app", "application")},
}

var usageRules = []rule{
	{"Web Component/Application Usage", projectTypeContains("React", "Next.js")},
	{"API Endpoint Usage", projectTypeContains("API", "Express")},
	{"Command Line Usage", projectTypeContains("CLI")},
	{"Library Import Usage", projectTypeContains("Library")},
	{"Python Module Usage", language("python")},
	{"JavaScript Module Usage", language("javascript", "typescript")},
}

var installationRules = []rule{
	{"npm/yarn installation", hasManifest("package.json")},
	{"npm/yarn installation", language("javascript", "typescript")},
	{"pip install from requirements", and(language("python"), hasManifest("requirements.txt"))},
	{"pip install from setup.py", and(language("python"), hasManifest("setup.py"))},
	{"pip install from source", language("python")},
	{"Maven/Gradle build", language("java")},
	{"go install", language("go")},
	{"cargo install", language("rust")},
}
