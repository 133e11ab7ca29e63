// Package mru decodes the ordering values that accompany most-recently-used
// registry keys: the binary MRUListEx form and the older MRUList string form
// where each character names one value.
package mru

import (
	"strconv"
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
)

// Terminator ends every MRUListEx ordering.
const Terminator = 0xFFFFFFFF

// ParseListEx decodes an MRUListEx value: little-endian uint32 entry numbers
// in most-recent-first order, ended by Terminator. A missing terminator reads
// to the last whole entry, and buffers shorter than one entry decode empty.
func ParseListEx(b []byte) []uint32 {
	var order []uint32
	for off := 0; off+4 <= len(b); off += 4 {
		v := buf.U32At(b, off)
		if v == Terminator {
			break
		}
		order = append(order, v)
	}
	return order
}

// ParseList splits the older string form into value names, most recent first.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, string(r))
	}
	return names
}

// PositionOf returns the index of a numbered value name inside an MRUListEx
// order, or -1 when the name is not numeric or not present.
func PositionOf(order []uint32, name string) int {
	n, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return -1
	}
	for i, v := range order {
		if v == uint32(n) {
			return i
		}
	}
	return -1
}

// Position returns the index of a value name inside the string form, or -1
// when either side is empty or the name does not occur.
func Position(list, name string) int {
	if list == "" || name == "" {
		return -1
	}
	return strings.Index(list, name)
}

// Value-name spellings observed across Windows builds. Lookup order matters:
// the canonical spelling wins when a key carries more than one.
var (
	listExNames = []string{"MRUListEx", "MruListEx", "mrulistex"}
	listNames   = []string{"MRUList", "MruList", "mrulist"}
)

// FindListEx picks the MRUListEx value out of a key's value map, trying the
// observed spellings in order.
func FindListEx(values map[string][]byte) ([]byte, bool) {
	for _, n := range listExNames {
		if v, ok := values[n]; ok {
			return v, true
		}
	}
	return nil, false
}

// FindList picks the MRUList value out of a key's string values, trying the
// observed spellings in order.
func FindList(values map[string]string) (string, bool) {
	for _, n := range listNames {
		if v, ok := values[n]; ok {
			return v, true
		}
	}
	return "", false
}
