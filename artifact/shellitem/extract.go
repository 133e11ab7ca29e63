package shellitem

import (
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// Scan windows for the per-class extractors. Components shorter than
// minComponentLen+1 characters are treated as stray bytes, not names.
const (
	driveScanStart   = 0x03
	driveScanMax     = 0x20
	networkScanStart = 0x04
	genericScanStart = 0x03
	genericASCIIMax  = 50
	minComponentLen  = 2
)

// drivePath pulls the "X:" root out of a drive item by scanning the header
// for an ASCII letter directly followed by a colon.
func drivePath(item []byte) string {
	limit := len(item) - 2
	if limit > driveScanMax {
		limit = driveScanMax
	}
	for off := driveScanStart; off < limit; off++ {
		c := item[off]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			if item[off+1] == ':' {
				c &^= 0x20 // ASCII uppercase
				return string([]byte{c, ':'})
			}
		}
	}
	return ""
}

// networkPath recovers the first decent printable run past the network item
// header, usually a \\server\share UNC root.
func networkPath(item []byte) string {
	for off := networkScanStart; off < len(item)-2; off++ {
		if s := format.ASCIIRun(item, off, 0); len(s) > minComponentLen {
			return s
		}
	}
	return ""
}

// genericPath is the last resort for unrecognized item types: the first
// decent ASCII run, then the first NUL-padded UTF-16 string.
func genericPath(item []byte) string {
	for off := genericScanStart; off < len(item)-2; off++ {
		if s := format.ASCIIRun(item, off, genericASCIIMax); len(s) > minComponentLen {
			return s
		}
	}
	for off := genericScanStart; off < len(item)-4; off += 2 {
		if item[off] != 0 && item[off+1] == 0 {
			if s := format.UTF16String(item, off); len([]rune(s)) > minComponentLen {
				return s
			}
		}
	}
	return ""
}
