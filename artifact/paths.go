package artifact

import (
	"strings"
	"unicode"
)

// lastSegment returns the text after the final backslash, or path itself.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '\\'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// extensionOf returns the lowercased extension of the path's final segment,
// without the dot.
func extensionOf(path string) string {
	name := lastSegment(path)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return strings.ToLower(name[i+1:])
	}
	return ""
}

// trimExtension drops the final extension from a bare file name.
func trimExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// printableOnly strips non-printable runes and surrounding whitespace.
func printableOnly(s string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(clean)
}
