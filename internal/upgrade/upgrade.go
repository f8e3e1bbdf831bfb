// Package upgrade checks GitHub for newer landingkit releases.
package upgrade

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

const (
	githubRepo = "pandeptwidyaop/landing-kit"
	githubAPI  = "https://api.github.com/repos/" + githubRepo + "/releases/latest"
)

// GitHubRelease represents a GitHub release with its metadata.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// Checker queries the releases API.
type Checker struct {
	APIURL string
	Client *http.Client
}

func NewChecker() *Checker {
	return &Checker{
		APIURL: githubAPI,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Latest fetches the latest published release.
func (c *Checker) Latest(ctx context.Context) (*GitHubRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to check for updates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to check for updates: HTTP %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to parse release info: %w", err)
	}

	return &release, nil
}

// NeedsUpgrade compares current with latest.
func NeedsUpgrade(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	// Dev builds always offer an upgrade
	if strings.Contains(current, "-") || current == "dev" {
		return true
	}

	return current != latest
}

// AssetName returns the expected release asset name for this platform.
func AssetName() string {
	return fmt.Sprintf("landingkit-%s-%s", runtime.GOOS, runtime.GOARCH)
}

// AssetURL finds the download URL for this platform, or "" when the release
// has no matching asset.
func AssetURL(release *GitHubRelease) string {
	expected := AssetName()
	for _, asset := range release.Assets {
		if asset.Name == expected {
			return asset.BrowserDownloadURL
		}
	}
	return ""
}

// Status is the result of comparing the running binary to the latest release.
type Status struct {
	Current         string `json:"current"`
	Latest          string `json:"latest"`
	UpdateAvailable bool   `json:"update_available"`
	ReleaseURL      string `json:"release_url,omitempty"`
	AssetURL        string `json:"asset_url,omitempty"`
}

// Check reports whether a newer release than the running binary exists.
func (c *Checker) Check(ctx context.Context) (*Status, error) {
	release, err := c.Latest(ctx)
	if err != nil {
		return &Status{Current: version.Version}, err
	}

	return &Status{
		Current:         version.Version,
		Latest:          release.TagName,
		UpdateAvailable: NeedsUpgrade(version.Version, release.TagName),
		ReleaseURL:      release.HTMLURL,
		AssetURL:        AssetURL(release),
	}, nil
}
