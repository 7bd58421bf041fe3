package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// releaseURL is the GitHub endpoint for the newest published release.
const releaseURL = "https://api.github.com/repos/sr-kai/mango-lollipop/releases/latest"

// Version represents a semantic version of the tool.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version in semver format (e.g., "0.4.2").
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// versionPattern matches an optional 'v' prefix, then major.minor.patch,
// allowing trailing pre-release tags but rejecting extra version segments.
var versionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:[^\d.].*)?$`)

// ParseVersion parses a semantic version string like "0.4.2" or "v0.4.2".
func ParseVersion(s string) (*Version, error) {
	s = strings.TrimSpace(s)
	matches := versionPattern.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("invalid version string %q: expected format v?MAJOR.MINOR.PATCH", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return &Version{Major: major, Minor: minor, Patch: patch}, nil
}

// ReleaseChecker defines operations for comparing the running build against
// the newest published release.
type ReleaseChecker interface {
	// LatestVersion fetches and parses the newest release tag.
	LatestVersion() (*Version, error)
	// UpdateAvailable reports whether current is older than the newest release.
	UpdateAvailable(current string) (bool, *Version, error)
}

// releaseChecker implements ReleaseChecker.
type releaseChecker struct {
	// fetcher is injected for testability. If nil, uses the GitHub API.
	fetcher func() (string, error)
	// cachedLatest avoids repeated network calls within one invocation.
	cachedLatest *Version
}

// NewReleaseChecker creates a ReleaseChecker backed by the GitHub API.
func NewReleaseChecker() ReleaseChecker {
	return &releaseChecker{fetcher: fetchLatestTag}
}

// NewReleaseCheckerWithFetcher creates a ReleaseChecker with a custom tag
// fetcher for testing.
func NewReleaseCheckerWithFetcher(fetcher func() (string, error)) ReleaseChecker {
	return &releaseChecker{fetcher: fetcher}
}

// fetchLatestTag queries the GitHub releases API and returns the tag name.
func fetchLatestTag() (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching latest release: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading release response: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("parsing release response: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release response has no tag name")
	}
	return release.TagName, nil
}

// LatestVersion fetches and parses the newest release tag, caching the result.
func (rc *releaseChecker) LatestVersion() (*Version, error) {
	if rc.cachedLatest != nil {
		return rc.cachedLatest, nil
	}

	tag, err := rc.fetcher()
	if err != nil {
		return nil, err
	}
	version, err := ParseVersion(tag)
	if err != nil {
		return nil, fmt.Errorf("parsing release tag %q: %w", tag, err)
	}

	rc.cachedLatest = version
	return version, nil
}

// UpdateAvailable parses the current version and compares it to the newest
// release. Development builds with unparseable versions report no update.
func (rc *releaseChecker) UpdateAvailable(current string) (bool, *Version, error) {
	cur, err := ParseVersion(current)
	if err != nil {
		return false, nil, nil
	}
	latest, err := rc.LatestVersion()
	if err != nil {
		return false, nil, err
	}
	return cur.Compare(*latest) < 0, latest, nil
}
