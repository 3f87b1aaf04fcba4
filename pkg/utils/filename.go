package utils

import "strings"

// SanitizeFilename makes user-supplied text safe to use as a filename and
// inside a mail attachment header: path separators, control characters and
// header-breaking bytes are replaced, surrounding whitespace dropped.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r < 0x20 || r == 0x7f:
			// control characters
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		case r == '\n' || r == '\r':
		default:
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return "document"
	}
	return out
}

// ExtensionFor maps the content types this service handles to a file
// extension.
func ExtensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "application/pdf":
		return ".pdf"
	}
	return ""
}
