package artifact

import "strings"

// MUICacheEntry is one cached application display name.
type MUICacheEntry struct {
	AppPath       string
	AppName       string
	FileExtension string
}

// ParseMUICache decodes a MUICache value. The value name is the application
// path and the string payload its display name; a missing display name falls
// back to the file name without its extension.
func ParseMUICache(name, display string) MUICacheEntry {
	if name == "" {
		return MUICacheEntry{}
	}
	e := MUICacheEntry{
		AppPath: strings.TrimSpace(name),
		AppName: strings.TrimSpace(display),
	}
	if e.AppName == "" && e.AppPath != "" {
		e.AppName = trimExtension(lastSegment(e.AppPath))
	}
	e.FileExtension = extensionOf(e.AppPath)
	return e
}
