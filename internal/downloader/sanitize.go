package downloader

import (
	"path/filepath"
	"strings"
)

const maxNameLen = 120

// SanitizeFilename replaces anything outside [A-Za-z0-9._-] with '_' and
// trims the stem to a sane length. The extension is kept as-is when safe.
func SanitizeFilename(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	stem = sanitizeRunes(stem)
	ext = sanitizeRunes(ext)
	stem = strings.Trim(stem, "._-")
	if stem == "" {
		stem = "media"
	}
	if len(stem) > maxNameLen {
		stem = stem[:maxNameLen]
	}
	return stem + ext
}

func sanitizeRunes(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		safe := r == '.' || r == '-' || r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if safe {
			b.WriteRune(r)
			lastUnderscore = r == '_'
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return b.String()
}
