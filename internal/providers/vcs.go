package providers

import (
	"github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/vcs"
	"github.com/thomas-vilte/matereadme/internal/vcs/github"
)

// NewVCSClient creates a VCSClient authenticated with the configured GitHub token
func NewVCSClient(cfg *config.Config) (vcs.VCSClient, error) {
	if cfg.GitHubToken == "" {
		return nil, domainErrors.ErrTokenMissing
	}
	return github.NewGitHubClient(cfg.GitHubToken, cfg.HTTPTimeout()), nil
}
