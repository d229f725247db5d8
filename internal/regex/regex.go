package regex

import "regexp"

var (
	// Repository references
	SSHRepo   = regexp.MustCompile(`^git@([^:]+):([^/]+)/(.+?)(?:\.git)?$`)
	HTTPSRepo = regexp.MustCompile(`^https?://([^/]+)/([^/]+)/([^/#?]+?)(?:\.git)?/?(?:[#?].*)?$`)
	RepoSlug  = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9-]{0,38})?)/([A-Za-z0-9._-]+)$`)

	// Completion output cleanup
	ThinkBlock    = regexp.MustCompile(`(?s)<think>.*?</think>`)
	MarkdownFence = regexp.MustCompile("(?s)^```(?:markdown|md)?[ \t]*\n(.*?)\n?```\\s*$")

	// Manifest parsing
	RequirementName = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)
)
