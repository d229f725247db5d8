package models

import "time"

// RepositoryMetadata is the descriptive information the hosting service
// returns for a repository. Optional fields are nil when the service has no value.
type RepositoryMetadata struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Owner         string    `json:"owner"`
	Description   *string   `json:"description,omitempty"`
	Language      *string   `json:"language,omitempty"`
	Topics        []string  `json:"topics,omitempty"`
	License       *string   `json:"license,omitempty"`
	Homepage      *string   `json:"homepage,omitempty"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	DefaultBranch string    `json:"default_branch"`
	URL           string    `json:"url"`
	Private       bool      `json:"private"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DescriptionOr returns the description or fallback when it is missing.
func (m RepositoryMetadata) DescriptionOr(fallback string) string {
	if m.Description == nil || *m.Description == "" {
		return fallback
	}
	return *m.Description
}

// LanguageOr returns the primary language or fallback when it is missing.
func (m RepositoryMetadata) LanguageOr(fallback string) string {
	if m.Language == nil || *m.Language == "" {
		return fallback
	}
	return *m.Language
}

// LicenseOr returns the license name or fallback when it is missing.
func (m RepositoryMetadata) LicenseOr(fallback string) string {
	if m.License == nil || *m.License == "" {
		return fallback
	}
	return *m.License
}

// Summary returns the short repository description attached to generation results.
func (m RepositoryMetadata) Summary() RepositorySummary {
	return RepositorySummary{
		Name:        m.Name,
		FullName:    m.FullName,
		Description: m.DescriptionOr(""),
		Language:    m.LanguageOr(""),
		URL:         m.URL,
		Stars:       m.Stars,
		Forks:       m.Forks,
	}
}

type RepositorySummary struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

// EntryKind distinguishes tree entries.
type EntryKind string

const (
	EntryFile      EntryKind = "file"
	EntryDir       EntryKind = "dir"
	EntrySubmodule EntryKind = "submodule"
)

// FileEntry is one node of a recursive repository tree listing.
type FileEntry struct {
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
	// Size is nil for entries the service does not size (directories, submodules).
	Size *int `json:"size,omitempty"`
}

// RepositoryTree is the flattened recursive listing of the default branch.
type RepositoryTree struct {
	SHA       string      `json:"sha"`
	Entries   []FileEntry `json:"entries"`
	Truncated bool        `json:"truncated"`
}
