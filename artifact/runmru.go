package artifact

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/mru"
)

// RunMRUEntry is one Run dialog history entry.
type RunMRUEntry struct {
	Command     string
	MRUPosition int
}

// ParseRunMRU decodes a RunMRU value. Values are plain strings; the dialog
// appends a "\1" style suffix to some entries, which is dropped. mruList is
// the sibling MRUList string and may be empty.
func ParseRunMRU(name, command, mruList string) RunMRUEntry {
	if name == "" || command == "" {
		return RunMRUEntry{MRUPosition: -1}
	}
	command = strings.TrimSpace(command)
	if i := strings.LastIndexByte(command, '\\'); i >= 0 && allDigits(command[i+1:]) {
		command = command[:i]
	}
	return RunMRUEntry{
		Command:     command,
		MRUPosition: mru.Position(mruList, name),
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
