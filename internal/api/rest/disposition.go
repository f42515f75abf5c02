package rest

import (
	"mime"
	"path"
	"strings"
)

// FilenameFromDisposition extracts the filename directive of a
// Content-Disposition header. It returns an empty string when none is present.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return path.Base(name)
		}
		return ""
	}

	// Malformed headers still often carry a usable filename=... part.
	for _, part := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "filename") {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if value != "" {
			return path.Base(value)
		}
	}
	return ""
}
