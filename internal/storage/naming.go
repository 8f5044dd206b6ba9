package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeFileName makes an uploaded filename safe as an object key segment:
// diacritics stripped, anything outside [a-zA-Z0-9.] collapsed to single
// hyphens, extension preserved.
func SanitizeFileName(name string) string {
	name = path.Base(strings.TrimSpace(name))

	ext := strings.ToLower(path.Ext(name))
	base := strings.TrimSuffix(name, path.Ext(name))

	base = stripDiacritics(base)
	ext = stripDiacritics(ext)

	base = collapseUnsafe(base)
	ext = collapseUnsafe(strings.TrimPrefix(ext, "."))

	if base == "" {
		base = "archivo"
	}
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// ObjectKey derives the storage name used for intake uploads:
// "<unix-timestamp>-<sanitized original name>".
func ObjectKey(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), SanitizeFileName(originalName))
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func collapseUnsafe(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-.")
}
