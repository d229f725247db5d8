package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.VCSClient = (*GitHubClient)(nil)

const (
	// defaultTreeRef resolves to the tip of the default branch.
	defaultTreeRef = "HEAD"
	maxPerPage     = 100
)

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
	ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error)
}

type GitService interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

type GitHubClient struct {
	repoService  RepositoriesService
	gitService   GitService
	usersService UsersService
	httpClient   *http.Client
}

// NewGitHubClient builds a client authenticated with token. An empty token
// gives anonymous access, which only works for public repositories.
func NewGitHubClient(token string, timeout time.Duration) *GitHubClient {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		repoService:  client.Repositories,
		gitService:   client.Git,
		usersService: client.Users,
		httpClient:   httpClient,
	}
}

func NewGitHubClientWithServices(
	repoService RepositoriesService,
	gitService GitService,
	usersService UsersService,
) *GitHubClient {
	return &GitHubClient{
		repoService:  repoService,
		gitService:   gitService,
		usersService: usersService,
		httpClient:   &http.Client{},
	}
}

func (ghc *GitHubClient) GetRepository(ctx context.Context, owner, repo string) (*models.RepositoryMetadata, error) {
	r, resp, err := ghc.repoService.Get(ctx, owner, repo)
	if err != nil {
		return nil, mapResponseError(resp, err, "get repository", owner, repo, domainErrors.ErrRepositoryNotFound)
	}

	metadata := toMetadata(r)
	return &metadata, nil
}

func (ghc *GitHubClient) GetRecursiveTree(ctx context.Context, owner, repo string) (*models.RepositoryTree, error) {
	log := logger.FromContext(ctx)

	tree, resp, err := ghc.gitService.GetTree(ctx, owner, repo, defaultTreeRef, true)
	if err != nil {
		return nil, mapResponseError(resp, err, "get tree", owner, repo, domainErrors.ErrFetchTree)
	}

	out := &models.RepositoryTree{
		SHA:       tree.GetSHA(),
		Truncated: tree.GetTruncated(),
		Entries:   make([]models.FileEntry, 0, len(tree.Entries)),
	}
	for _, e := range tree.Entries {
		out.Entries = append(out.Entries, toFileEntry(e))
	}

	if out.Truncated {
		log.Warn("repository tree was truncated by the API",
			"repo", fmt.Sprintf("%s/%s", owner, repo),
			"entries", len(out.Entries))
	}

	return out, nil
}

func (ghc *GitHubClient) GetFileContent(ctx context.Context, owner, repo, path string) (*string, error) {
	file, _, resp, err := ghc.repoService.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, mapResponseError(resp, err, "get file content", owner, repo, domainErrors.ErrFetchFile).
			WithContext("path", path)
	}

	// Directories come back as a listing with no single file.
	if file == nil || file.GetType() != "file" {
		return nil, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, domainErrors.ErrFetchFile.WithError(err).WithContext("path", path)
	}
	return &content, nil
}

func (ghc *GitHubClient) ListRepositories(ctx context.Context, limit int) ([]models.RepositoryMetadata, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}

	var out []models.RepositoryMetadata
	for {
		repos, resp, err := ghc.repoService.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			if mapped := statusError(resp, "list repositories"); mapped != nil {
				return nil, mapped
			}
			return nil, domainErrors.ErrListRepositories.WithError(err)
		}

		for _, r := range repos {
			out = append(out, toMetadata(r))
			if limit > 0 && len(out) >= limit {
				return out, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// PutFile creates path or updates it in place when it already exists.
func (ghc *GitHubClient) PutFile(ctx context.Context, owner, repo, path, content, message string) (*models.PublishResult, error) {
	log := logger.FromContext(ctx)

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: []byte(content),
	}

	existing, _, resp, err := ghc.repoService.GetContents(ctx, owner, repo, path, nil)
	switch {
	case err == nil && existing != nil:
		opts.SHA = existing.SHA
	case err != nil && (resp == nil || resp.StatusCode != http.StatusNotFound):
		return nil, mapResponseError(resp, err, "read existing file", owner, repo, domainErrors.ErrPublishReadme).
			WithContext("path", path)
	}

	created := opts.SHA == nil
	var res *github.RepositoryContentResponse
	if created {
		res, resp, err = ghc.repoService.CreateFile(ctx, owner, repo, path, opts)
	} else {
		res, resp, err = ghc.repoService.UpdateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		return nil, mapResponseError(resp, err, "publish file", owner, repo, domainErrors.ErrPublishReadme).
			WithContext("path", path)
	}

	result := &models.PublishResult{
		Path:      path,
		CommitSHA: res.Commit.GetSHA(),
		HTMLURL:   res.GetContent().GetHTMLURL(),
		Created:   created,
	}

	log.Info("file published",
		"repo", fmt.Sprintf("%s/%s", owner, repo),
		"path", path,
		"created", created,
		"commit", result.CommitSHA)

	return result, nil
}

func (ghc *GitHubClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return "", domainErrors.ErrGitHubTokenInvalid.
				WithContext("operation", "get authenticated user")
		}
		return "", fmt.Errorf("error obtaining authenticated user: %w", err)
	}

	if user.Login == nil {
		return "", fmt.Errorf("authenticated user has no login")
	}

	return *user.Login, nil
}

// statusError maps the HTTP statuses GitHub uses for auth and quota problems.
func statusError(resp *github.Response, operation string) *domainErrors.AppError {
	if resp == nil {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domainErrors.ErrGitHubTokenInvalid.
			WithContext("operation", operation)
	case http.StatusTooManyRequests:
		return domainErrors.ErrGitHubRateLimit.
			WithContext("retry_after", resp.Header.Get("Retry-After")).
			WithContext("operation", operation)
	case http.StatusForbidden:
		if resp.Rate.Remaining == 0 && !resp.Rate.Reset.IsZero() {
			return domainErrors.ErrGitHubRateLimit.
				WithContext("reset", resp.Rate.Reset.Time.Format(time.RFC3339)).
				WithContext("operation", operation)
		}
		return domainErrors.ErrGitHubInsufficientPerms.
			WithContext("operation", operation)
	}
	return nil
}

func mapResponseError(resp *github.Response, err error, operation, owner, repo string, fallback *domainErrors.AppError) *domainErrors.AppError {
	fullName := fmt.Sprintf("%s/%s", owner, repo)
	if mapped := statusError(resp, operation); mapped != nil {
		return mapped.WithError(err).WithContext("repo", fullName)
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return domainErrors.ErrRepositoryNotFound.
			WithError(err).
			WithContext("operation", operation).
			WithContext("repo", fullName)
	}
	return fallback.WithError(err).
		WithContext("operation", operation).
		WithContext("repo", fullName)
}

func toMetadata(r *github.Repository) models.RepositoryMetadata {
	return models.RepositoryMetadata{
		ID:            r.GetID(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Owner:         r.GetOwner().GetLogin(),
		Description:   optionalString(r.GetDescription()),
		Language:      optionalString(r.GetLanguage()),
		Topics:        r.Topics,
		License:       optionalString(r.GetLicense().GetName()),
		Homepage:      optionalString(r.GetHomepage()),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		DefaultBranch: r.GetDefaultBranch(),
		URL:           r.GetHTMLURL(),
		Private:       r.GetPrivate(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
	}
}

func toFileEntry(e *github.TreeEntry) models.FileEntry {
	entry := models.FileEntry{Path: e.GetPath(), Size: e.Size}
	switch e.GetType() {
	case "tree":
		entry.Kind = models.EntryDir
	case "commit":
		entry.Kind = models.EntrySubmodule
	default:
		entry.Kind = models.EntryFile
	}
	return entry
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
