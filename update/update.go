// Package update checks the project's GitHub releases for a newer version.
// The check is informational only; nothing in the scan or reorganize paths
// depends on it.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const releaseURL = "https://api.github.com/repos/photosift/photosift/releases/latest"

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type releaseInfo struct {
	TagName string         `json:"tag_name"`
	HTMLURL string         `json:"html_url"`
	Body    string         `json:"body"`
	Assets  []releaseAsset `json:"assets"`
}

// Release describes an available update.
type Release struct {
	Version     string
	Notes       string
	DownloadURL string
}

// CheckForUpdate queries the latest published release. It reports a release
// only when its version is strictly newer than current, so a rolled-back or
// re-published older tag is never announced as an update.
func CheckForUpdate(current string) (*Release, bool, error) {
	return checkForUpdateURL(current, releaseURL)
}

func checkForUpdateURL(current, url string) (*Release, bool, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", "photosift/"+current)
	resp, err := client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	var info releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, false, err
	}

	latest := strings.TrimPrefix(info.TagName, "v")
	if !isNewer(latest, current) {
		return nil, false, nil
	}
	return &Release{
		Version:     latest,
		Notes:       info.Body,
		DownloadURL: downloadURL(&info),
	}, true, nil
}

// downloadURL prefers a packaged asset over the release page.
func downloadURL(info *releaseInfo) string {
	url := info.HTMLURL
	for _, asset := range info.Assets {
		name := strings.ToLower(asset.Name)
		if strings.HasSuffix(name, ".dmg") || strings.HasSuffix(name, ".exe") || strings.HasSuffix(name, ".zip") {
			return asset.BrowserDownloadURL
		}
	}
	return url
}

// parseVersion turns "v1.2.3" into comparable numeric segments. Anything
// unparseable compares as 0.0.0.
func parseVersion(version string) []int {
	version = strings.TrimPrefix(version, "v")
	parts := strings.Split(version, ".")
	segments := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return []int{0, 0, 0}
		}
		segments[i] = n
	}
	return segments
}

func isNewer(latest, current string) bool {
	a, b := parseVersion(latest), parseVersion(current)
	for i := 0; i < len(a) || i < len(b); i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return av > bv
		}
	}
	return false
}
