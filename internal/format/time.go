package format

import (
	"time"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
)

// TimeLayout is the rendering used for every decoded timestamp.
const TimeLayout = "2006-01-02 15:04:05"

const (
	filetimeOffset = 116444736000000000 // difference between FILETIME epoch and Unix epoch in 100ns units

	// Window accepted by heuristic timestamp scans, roughly 1980 through 2105.
	// FILETIME values outside it are almost always string or counter bytes.
	filetimePlausibleMin = 119600064000000000
	filetimePlausibleMax = 159017088000000000
)

// FiletimeValueString renders a Windows FILETIME value using TimeLayout.
// A value of 0 or one past the representable calendar returns "".
func FiletimeValueString(v uint64) string {
	if v == 0 {
		return ""
	}
	us := int64(v/10) - filetimeOffset/10
	t := time.UnixMicro(us).UTC()
	if t.Year() > 9999 {
		return ""
	}
	return t.Format(TimeLayout)
}

// FiletimeString decodes the first 8 bytes of b as a little-endian FILETIME.
// Returns "" when b is shorter than 8 bytes.
func FiletimeString(b []byte) string {
	return FiletimeValueString(buf.U64LE(b))
}

// PlausibleFiletime reports whether v falls inside the window used when
// scanning unstructured bytes for embedded timestamps.
func PlausibleFiletime(v uint64) bool {
	return v > filetimePlausibleMin && v < filetimePlausibleMax
}

// DOSDateTimeString renders a packed DOS date/time value using TimeLayout.
// The date sits in the low word and the time in the high word:
//
//	date: bits 0-4 day, 5-8 month, 9-15 years since 1980
//	time: bits 0-4 seconds/2, 5-10 minutes, 11-15 hours
//
// A value of 0 or any field outside its calendar range returns "".
func DOSDateTimeString(v uint32) string {
	if v == 0 {
		return ""
	}
	date := uint16(v)
	clock := uint16(v >> 16)

	day := int(date & 0x1F)
	month := int(date>>5) & 0x0F
	year := (int(date>>9) & 0x7F) + 1980
	sec := int(clock&0x1F) * 2
	min := int(clock>>5) & 0x3F
	hour := int(clock >> 11)

	if day < 1 || day > 31 || month < 1 || month > 12 || year > 2100 {
		return ""
	}
	if hour > 23 || min > 59 || sec > 59 {
		return ""
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return ""
	}
	return t.Format(TimeLayout)
}
