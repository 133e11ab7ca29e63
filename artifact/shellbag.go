package artifact

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/shellitem"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// ShellbagEntry is one decoded BagMRU slot: a folder the user viewed in
// Explorer, with whatever metadata its first shell item carried.
type ShellbagEntry struct {
	FolderPath       string
	FolderName       string
	ItemType         shellitem.Kind
	ModifiedDate     string
	CreatedDate      string
	AccessedDate     string
	FileSize         uint32
	FolderAttributes string
	SpecialFolder    string
	NetworkShare     string
}

// Whole-buffer offsets probed when the first item carried no timestamps.
var shellbagTimeOffsets = []int{8, 16, 24, 32, 40}

const shellbagTimeScanMin = 16

// ParseShellbag decodes a BagMRU value. The path, name, and classification
// come from walking the whole PIDL; per-folder metadata comes from the first
// item alone, since nested slots repeat their ancestors' items.
func ParseShellbag(data []byte) ShellbagEntry {
	pidl := shellitem.Parse(data)
	e := ShellbagEntry{
		FolderPath: pidl.Path,
		FolderName: lastSegment(pidl.Path),
		ItemType:   pidl.Kind,
	}

	if first, ok := shellitem.First(data); ok {
		e.SpecialFolder = first.SpecialFolder()
		e.FolderAttributes = strings.Join(first.Attributes(), ", ")
		e.ModifiedDate = first.ModifiedTime()
		e.FileSize = first.FileSize()
		e.CreatedDate, e.AccessedDate = first.ExtensionTimes()
		if first.Kind() == shellitem.KindNetwork && strings.Contains(e.FolderPath, `\\`) {
			e.NetworkShare = e.FolderPath
		}
	}

	// Desperation scan: some item layouts hide their FILETIMEs at fixed
	// whole-value offsets instead of the extension block.
	if e.ModifiedDate == "" && e.AccessedDate == "" && len(data) >= shellbagTimeScanMin {
		for _, off := range shellbagTimeOffsets {
			v := buf.U64At(data, off)
			if !format.PlausibleFiletime(v) {
				continue
			}
			ts := format.FiletimeValueString(v)
			switch {
			case ts != "" && e.ModifiedDate == "":
				e.ModifiedDate = ts
			case ts != "" && e.AccessedDate == "":
				e.AccessedDate = ts
			}
		}
	}
	return e
}
