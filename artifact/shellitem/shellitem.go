// Package shellitem walks ITEMIDLIST (PIDL) structures embedded in registry
// values and recovers display paths from them. Shell item layouts in the wild
// are undocumented and inconsistent across Windows versions, so extraction is
// heuristic: every accessor bounds-checks and degrades to an empty value
// rather than failing.
package shellitem

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// Shell item layout. Every item starts with a little-endian uint16 size that
// includes the size field itself, followed by a one-byte type indicator.
//
//	0x00  uint16  item size
//	0x02  byte    type indicator
//
// Filesystem items continue:
//
//	0x04  byte    FILE_ATTRIBUTE flags, low byte
//	0x08  uint32  DOS date/time, last modified
//	0x0C  uint32  file size in bytes
//	0x0E  [12]    8.3 short name, ASCII
const (
	itemSizeLen        = 2
	itemTypeOffset     = 2
	itemGUIDOffset     = 4
	itemAttrOffset     = 4
	itemDOSOffset      = 8
	itemFileSizeOffset = 0x0C
	shortNameOffset    = 0x0E
	shortNameMax       = 12
)

// Type indicator classes. The high nibble selects the item family.
const (
	typeSpecialFolder byte = 0x1F
	typeDriveMin      byte = 0x20
	typeDriveMax      byte = 0x2F
	typeFilesystemMin byte = 0x30
	typeFilesystemMax byte = 0x3F
	typeNetworkMin    byte = 0x40
	typeNetworkMax    byte = 0x4F
)

// Kind labels the class of shell item that produced a path.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindSpecialFolder Kind = "special_folder"
	KindDrive         Kind = "drive"
	KindFilesystem    Kind = "filesystem"
	KindNetwork       Kind = "network"
)

func classify(ti byte) Kind {
	switch {
	case ti == typeSpecialFolder:
		return KindSpecialFolder
	case ti >= typeDriveMin && ti <= typeDriveMax:
		return KindDrive
	case ti >= typeFilesystemMin && ti <= typeFilesystemMax:
		return KindFilesystem
	case ti >= typeNetworkMin && ti <= typeNetworkMax:
		return KindNetwork
	default:
		return KindUnknown
	}
}

// Path is the result of walking a shell item chain.
type Path struct {
	// Path joins the recovered components with backslashes.
	Path string
	// Components holds each recovered name in item order.
	Components []string
	// Kind reflects the last classified item in the chain.
	Kind Kind
	// SpecialFolder names the first well-known folder GUID in the chain.
	SpecialFolder string
}

// Parse walks the shell item chain in b and recovers whatever display names
// and classification survive. A zero size, a size crossing the end of the
// buffer, or plain exhaustion ends the walk; the result is never an error.
func Parse(b []byte) Path {
	p := Path{Kind: KindUnknown}
	for off := 0; off+itemSizeLen <= len(b); {
		size := int(buf.U16At(b, off))
		if size == 0 {
			break
		}
		if off+size > len(b) {
			break
		}
		item := b[off : off+size]
		if len(item) > itemTypeOffset {
			switch k := classify(item[itemTypeOffset]); k {
			case KindSpecialFolder:
				p.Kind = k
				if name := specialFolderName(item); name != "" && p.SpecialFolder == "" {
					p.SpecialFolder = name
				}
			case KindDrive:
				p.Kind = k
				if c := drivePath(item); c != "" {
					p.Components = append(p.Components, c)
				}
			case KindFilesystem:
				p.Kind = k
				if c := filesystemName(item); c != "" {
					p.Components = append(p.Components, c)
				}
			case KindNetwork:
				p.Kind = k
				if c := networkPath(item); c != "" {
					p.Components = append(p.Components, c)
				}
			default:
				if c := genericPath(item); c != "" {
					p.Components = append(p.Components, c)
				}
			}
		}
		off += size
	}
	p.Path = strings.Join(p.Components, `\`)
	return p
}

func specialFolderName(item []byte) string {
	g, ok := buf.Slice(item, itemGUIDOffset, guidLen)
	if !ok {
		return ""
	}
	return FolderNameByGUID(format.GUIDString(g))
}
