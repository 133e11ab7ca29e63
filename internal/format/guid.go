package format

import (
	"encoding/binary"
	"fmt"
)

// GUIDString renders a 16-byte GUID in registry text form. The first three
// groups are stored little-endian, the remaining eight bytes in order.
// Returns "" when b is not exactly 16 bytes.
func GUIDString(b []byte) string {
	if len(b) != 16 {
		return ""
	}
	return fmt.Sprintf("%08X-%04X-%04X-%X-%X",
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint16(b[4:6]),
		binary.LittleEndian.Uint16(b[6:8]),
		b[8:10],
		b[10:16])
}
