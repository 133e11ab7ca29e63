package artifact

import (
	"unicode"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/shellitem"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// Fallback scan tuning: ASCII runs are capped, and a UTF-16 candidate must
// be mostly printable to displace a shorter one.
const (
	asciiRunMax       = 100
	printableRatioMin = 0.7
)

// ParseRecentDocs recovers the display name from a RecentDocs value. The
// usual layout is a NUL-terminated UTF-16LE name followed by an abbreviated
// PIDL; entries that defeat both readings fall back to the longest mostly
// printable run anywhere in the buffer.
func ParseRecentDocs(data []byte) string {
	if name := printableOnly(format.UTF16String(data, 0)); name != "" {
		return name
	}
	if p := shellitem.Parse(data); p.Path != "" {
		if name := printableOnly(lastSegment(p.Path)); name != "" {
			return name
		}
	}
	return printableOnly(bestString(data))
}

// bestString sweeps the buffer for the longest recoverable text: UTF-16LE
// candidates at NUL-padded even offsets first, then plain ASCII runs.
func bestString(data []byte) string {
	best, bestLen := "", 0
	for off := 0; off+4 < len(data); off += 2 {
		if data[off] == 0 || data[off+1] != 0 {
			continue
		}
		runes := []rune(format.UTF16String(data, off))
		if len(runes) == 0 || len(runes) <= bestLen {
			continue
		}
		printable := 0
		for _, r := range runes {
			if unicode.IsPrint(r) {
				printable++
			}
		}
		if float64(printable) > float64(len(runes))*printableRatioMin {
			best, bestLen = string(runes), len(runes)
		}
	}
	for off := 0; off < len(data)-2; off++ {
		if s := format.ASCIIRun(data, off, asciiRunMax); len(s) > bestLen {
			best, bestLen = s, len(s)
		}
	}
	return best
}
