package artifact

import (
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/shellitem"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// OpenSaveEntry is one decoded value from an OpenSavePidlMRU key: a file the
// user touched through a common open/save dialog.
type OpenSaveEntry struct {
	FilePath   string
	Extension  string
	AccessDate string
	// Raw keeps the value bytes so consumers can reprocess entries whose
	// PIDL defeated path recovery.
	Raw []byte
}

// ParseOpenSave decodes an OpenSavePidlMRU value. The payload is a PIDL
// naming the touched file; some Windows builds append the dialog FILETIME
// after the chain, taken here only when it lands in the plausible window.
func ParseOpenSave(data []byte) OpenSaveEntry {
	e := OpenSaveEntry{
		FilePath: shellitem.Parse(data).Path,
		Raw:      data,
	}
	e.Extension = extensionOf(e.FilePath)
	if len(data) >= 8 {
		if v := buf.U64At(data, len(data)-8); format.PlausibleFiletime(v) {
			e.AccessDate = format.FiletimeValueString(v)
		}
	}
	return e
}

// LastSaveEntry is one decoded value from a LastVisitedPidlMRU key: the
// application a dialog ran in and the folder it last visited.
type LastSaveEntry struct {
	Application string
	FolderPath  string
}

// ParseLastSave decodes a LastVisitedPidlMRU value: a NUL-terminated UTF-16LE
// executable name followed by the folder PIDL.
func ParseLastSave(data []byte) LastSaveEntry {
	e := LastSaveEntry{Application: format.UTF16String(data, 0)}

	for off := 0; off < len(data)-1; off += 2 {
		if data[off] == 0 && data[off+1] == 0 {
			if off+2 < len(data) {
				e.FolderPath = shellitem.Parse(data[off+2:]).Path
			}
			break
		}
	}
	return e
}
