package artifact

import (
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// UserAssistEntry is one GUI launch counter. FocusTime is in milliseconds.
type UserAssistEntry struct {
	ProgramPath   string
	RunCount      uint32
	FocusCount    uint32
	FocusTime     uint32
	LastExecution string
}

// UserAssist count blocks dispatch on the version dword.
//
//	version 3 (XP era):    0x04 uint32 run count, 0x08 FILETIME
//	version 5 (Win7+):     0x04 uint32 run count, 0x08 uint32 focus count,
//	                       0x0C uint32 focus time ms, 0x10 FILETIME
const (
	userAssistVersionXP   = 3
	userAssistVersionWin7 = 5

	userAssistMinSize     = 16
	userAssistWin7MinSize = 24
)

// ParseUserAssist decodes a UserAssist Count value. The value name is the
// ROT13-rotated program path; counters come from the payload when its
// version is one this decoder knows, and stay zero otherwise.
func ParseUserAssist(name string, data []byte) UserAssistEntry {
	e := UserAssistEntry{ProgramPath: format.Rot13(name)}
	if len(data) < userAssistMinSize {
		return e
	}
	switch buf.U32At(data, 0) {
	case userAssistVersionWin7:
		if len(data) >= userAssistWin7MinSize {
			e.RunCount = buf.U32At(data, 4)
			e.FocusCount = buf.U32At(data, 8)
			e.FocusTime = buf.U32At(data, 12)
			e.LastExecution = format.FiletimeString(data[16:24])
		}
	case userAssistVersionXP:
		e.RunCount = buf.U32At(data, 4)
		e.LastExecution = format.FiletimeString(data[8:16])
	}
	return e
}
