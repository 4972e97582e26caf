package utils

import (
	"strings"
)

// SanitizeName turns an archive member name into a relative slash separated
// path that can't escape the archive root. Backslashes count as separators,
// empty, "." and ".." components as well as drive letters are dropped.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")

	parts := strings.Split(name, "/")
	kept := make([]string, 0, len(parts))

	for i, part := range parts {
		if part == "" || part == "." || part == ".." {
			continue
		}
		// "C:" in front of a path
		if i == 0 && len(part) == 2 && part[1] == ':' {
			continue
		}
		kept = append(kept, part)
	}

	return strings.Join(kept, "/")
}

// Extension returns the extension of the last path element without the
// leading dot. Names like ".hdr" or "dem" have no extension.
func Extension(name string) string {
	base := name
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}

	return base[i+1:]
}
