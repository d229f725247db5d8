package vcs

import (
	"strings"

	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/regex"
)

const defaultHost = "github.com"

// Reference identifies a repository on a hosting service.
type Reference struct {
	Host  string
	Owner string
	Repo  string
}

func (r Reference) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseReference accepts owner/name, an https URL or an ssh remote.
func ParseReference(ref string) (Reference, error) {
	ref = strings.TrimSpace(ref)

	if m := regex.RepoSlug.FindStringSubmatch(ref); m != nil {
		return Reference{Host: defaultHost, Owner: m[1], Repo: strings.TrimSuffix(m[2], ".git")}, nil
	}
	if m := regex.HTTPSRepo.FindStringSubmatch(ref); m != nil {
		return Reference{Host: m[1], Owner: m[2], Repo: m[3]}, nil
	}
	if m := regex.SSHRepo.FindStringSubmatch(ref); m != nil {
		return Reference{Host: m[1], Owner: m[2], Repo: m[3]}, nil
	}

	return Reference{}, domainErrors.ErrInvalidRepository.WithContext("reference", ref)
}
