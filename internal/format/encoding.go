package format

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Printable ASCII range used by the heuristic string scanners.
const (
	asciiPrintableMin = 0x20
	asciiPrintableMax = 0x7E
)

// DecodeUTF16 interprets b as UTF-16LE text. Units that do not decode are
// dropped rather than surfaced as errors, so mangled value data degrades to
// whatever text survives.
func DecodeUTF16(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(string(out), "�", "")
}

// UTF16String extracts the UTF-16LE string starting at off, stopping at the
// first NUL pair or the end of the buffer. Surrounding whitespace is trimmed.
func UTF16String(b []byte, off int) string {
	if off < 0 || off >= len(b) {
		return ""
	}
	end := off
	for end < len(b)-1 {
		if b[end] == 0 && b[end+1] == 0 {
			break
		}
		end += 2
	}
	return strings.TrimSpace(DecodeUTF16(b[off:end]))
}

// ASCIIRun returns the run of printable ASCII bytes starting at off. A NUL or
// any other non-printable byte ends the run. max caps the run length when
// positive.
func ASCIIRun(b []byte, off, max int) string {
	if off < 0 || off >= len(b) {
		return ""
	}
	end := len(b)
	if max > 0 && off+max < end {
		end = off + max
	}
	i := off
	for i < end && b[i] >= asciiPrintableMin && b[i] <= asciiPrintableMax {
		i++
	}
	return string(b[off:i])
}

// Rot13 applies the ROT13 substitution to ASCII letters, leaving every other
// character untouched. UserAssist value names are stored this way.
func Rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		default:
			return r
		}
	}, s)
}
