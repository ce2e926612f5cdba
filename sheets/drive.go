package sheets

import (
	"net/url"
	"regexp"
	"strings"
)

var reDriveFile = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)

// ConvertDriveURL rewrites Google Drive share links to a direct image URL
// that can be used in an <img> src. Links that are not Drive share links
// pass through unchanged, and an empty string stays empty.
func ConvertDriveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "drive.google.com") {
		return raw
	}
	// https://drive.google.com/file/d/<id>/view?usp=sharing
	if m := reDriveFile.FindStringSubmatch(raw); m != nil {
		return directDriveURL(m[1])
	}
	// https://drive.google.com/open?id=<id> and uc?id=<id> variants
	if u, err := url.Parse(raw); err == nil {
		if id := u.Query().Get("id"); id != "" {
			return directDriveURL(id)
		}
	}
	return raw
}

func directDriveURL(id string) string {
	return "https://drive.google.com/uc?export=view&id=" + id
}
