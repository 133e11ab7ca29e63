package artifact

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// BAMEntry is one Background Activity Moderator record: an executable path
// and the moment it last ran.
type BAMEntry struct {
	ProcessPath   string
	LastExecution string
}

// ParseBAM decodes a bam\State\UserSettings value. The value name is the
// executable path; the payload opens with the last-execution FILETIME.
func ParseBAM(name string, data []byte) BAMEntry {
	if name == "" {
		return BAMEntry{}
	}
	e := BAMEntry{ProcessPath: strings.TrimSpace(name)}
	if len(data) >= 8 {
		e.LastExecution = format.FiletimeString(data[:8])
	}
	return e
}

// DAMEntry is one Desktop Activity Moderator record.
type DAMEntry struct {
	AppName       string
	ProcessPath   string
	LastExecution string
}

// ParseDAM decodes a dam\State\UserSettings value. Layout matches BAM, but
// some builds store the path as UTF-16LE after the FILETIME instead of in
// the value name.
func ParseDAM(name string, data []byte) DAMEntry {
	if name == "" && len(data) == 0 {
		return DAMEntry{}
	}
	var e DAMEntry
	if len(data) >= 8 {
		e.LastExecution = format.FiletimeString(data[:8])
	}
	if name != "" {
		e.ProcessPath = strings.TrimSpace(name)
	}
	if e.ProcessPath == "" && len(data) > 8 {
		if tail := data[8:]; len(tail) >= 4 {
			e.ProcessPath = format.UTF16String(tail, 0)
		}
	}
	if e.ProcessPath != "" {
		e.AppName = exeName(e.ProcessPath)
	}
	return e
}

// exeName reduces a process path to its program name, dropping a trailing
// ".exe" in any case.
func exeName(path string) string {
	name := lastSegment(path)
	if strings.HasSuffix(strings.ToLower(name), ".exe") {
		return name[:len(name)-4]
	}
	return name
}
