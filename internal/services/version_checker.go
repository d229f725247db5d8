package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-github/v80/github"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"golang.org/x/mod/semver"
)

const (
	EnvDisableUpdateCheck = "MATEREADME_DISABLE_UPDATE_CHECK"

	releaseOwner    = "thomas-vilte"
	releaseRepo     = "matereadme"
	checkInterval   = 24 * time.Hour
	checkTimeout    = 2 * time.Second
	updateCacheFile = "last_update_check.json"
)

// releaseSource is the subset of the go-github repositories service used here.
type releaseSource interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

// VersionChecker tells the user when a newer release is published. It never
// installs anything.
type VersionChecker struct {
	currentVersion string
	trans          *i18n.Translations
	releases       releaseSource
	cacheDir       string
	out            io.Writer
}

type VersionCheckerOption func(*VersionChecker)

func WithReleaseSource(src releaseSource) VersionCheckerOption {
	return func(v *VersionChecker) {
		v.releases = src
	}
}

func WithCacheDir(dir string) VersionCheckerOption {
	return func(v *VersionChecker) {
		v.cacheDir = dir
	}
}

func WithNotificationWriter(w io.Writer) VersionCheckerOption {
	return func(v *VersionChecker) {
		v.out = w
	}
}

func NewVersionChecker(version string, trans *i18n.Translations, opts ...VersionCheckerOption) *VersionChecker {
	v := &VersionChecker{
		currentVersion: version,
		trans:          trans,
		out:            os.Stderr,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.releases == nil {
		v.releases = github.NewClient(nil).Repositories
	}
	return v
}

// CheckForUpdates consults the cached latest version, refreshing it at most
// once a day, and prints a notice when it is newer than the running binary.
func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv(EnvDisableUpdateCheck) != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < checkInterval {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	release, _, err := v.releases.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(UpdateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion)
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msgAvailable := v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})
	msgCommand := v.trans.GetMessage("update.command", 0, map[string]interface{}{
		"Command": green(fmt.Sprintf("go install github.com/%s/%s/cmd@latest", releaseOwner, releaseRepo)),
	})

	_, _ = fmt.Fprintf(v.out, "\n%s %s\n", yellow("⬆"), msgAvailable)
	_, _ = fmt.Fprintf(v.out, "  %s\n\n", msgCommand)
}

func (v *VersionChecker) getCacheDir() (string, error) {
	dir := v.cacheDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, ".matereadme")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func (v *VersionChecker) loadCache() (UpdateCache, error) {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return UpdateCache{}, err
	}

	data, err := os.ReadFile(filepath.Join(cacheDir, updateCacheFile))
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}

	return cache, nil
}

func (v *VersionChecker) saveCache(cache UpdateCache) error {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cacheDir, updateCacheFile), data, 0644)
}
