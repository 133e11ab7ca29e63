package shellitem

import (
	"strings"
	"unicode"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// The long-name scan walks candidate UTF-16 starts in the extension blocks
// past 0x40 and keeps the highest-scoring string. Scores reward a capital or
// alphanumeric first character, length, and a high share of filename-class
// characters; embedded control characters count against.
const (
	longNameScanStart = 0x40
	longNameMinTail   = 8
	minNameRunes      = 3

	scoreUpperFirst      = 15
	scoreAlnumFirst      = 10
	scoreValidCharWeight = 20
	scoreControlPenalty  = 5
	scoreAcceptThreshold = 10
)

// ASCII letter window accepted as a candidate first byte. The range runs past
// 'Z' through the punctuation block to keep lowercase names in play.
const (
	asciiLetterMin = 0x41
	asciiLetterMax = 0x7A
)

// Characters beyond letters and digits that commonly appear in real names.
const validNameExtra = " .-_()[]{}"

// filesystemName recovers the display name of a filesystem item: the best
// scored long name when one clears the threshold, otherwise the 8.3 short
// name when present.
func filesystemName(item []byte) string {
	best, bestScore := "", 0
	for off := longNameScanStart; off < len(item)-longNameMinTail; off += 2 {
		if item[off] == 0 || item[off+1] != 0 {
			continue
		}
		if item[off] < asciiLetterMin || item[off] > asciiLetterMax {
			continue
		}
		// A letter+NUL directly before the offset means this start sits
		// inside the string already scanned.
		if item[off-1] == 0 && item[off-2] >= asciiLetterMin && item[off-2] <= asciiLetterMax {
			continue
		}
		cand := []rune(format.UTF16String(item, off))
		if len(cand) <= minNameRunes {
			continue
		}
		// A <lower><Upper> start usually carries one unit left over from the
		// preceding field; the real string starts two bytes in.
		if unicode.IsLower(cand[0]) && unicode.IsUpper(cand[1]) && off+2 < len(item)-4 {
			if alt := []rune(format.UTF16String(item, off+2)); len(alt) > minNameRunes {
				cand = alt
			}
		}
		if score := scoreName(cand); score > bestScore {
			best, bestScore = string(cand), score
		}
	}
	if best != "" && bestScore > scoreAcceptThreshold {
		return best
	}
	if short := shortName(item); len(short) > 1 {
		return short
	}
	return ""
}

func scoreName(runes []rune) int {
	score := 0
	switch {
	case unicode.IsUpper(runes[0]):
		score += scoreUpperFirst
	case isAlnum(runes[0]):
		score += scoreAlnumFirst
	}
	score += len(runes)

	valid := 0
	for _, r := range runes {
		if isAlnum(r) || strings.ContainsRune(validNameExtra, r) {
			valid++
		}
	}
	score += int(float64(valid) / float64(len(runes)) * scoreValidCharWeight)

	for _, r := range runes {
		if r < 0x20 {
			score -= scoreControlPenalty
		}
	}
	return score
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// shortName recovers the 8.3 name stored inline in older filesystem items.
// NUL ends the field; other non-printable bytes are skipped, not fatal.
func shortName(item []byte) string {
	if len(item) <= 0x10 {
		return ""
	}
	end := len(item)
	if shortNameOffset+shortNameMax < end {
		end = shortNameOffset + shortNameMax
	}
	var b strings.Builder
	for i := shortNameOffset; i < end; i++ {
		c := item[i]
		if c == 0 {
			break
		}
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
		}
	}
	return b.String()
}
