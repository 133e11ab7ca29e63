package artifact

import "encoding/binary"

// --- shared fixtures ---

// FILETIMEs for 2020-01-01 and 2021-01-01 00:00:00 UTC.
const (
	ft2020 = uint64(132223104000000000)
	ft2021 = uint64(132539328000000000)
)

// myComputerGUID is CLSID_MyComputer in stored (mixed-endian) byte order.
var myComputerGUID = []byte{
	0xE0, 0x4F, 0xD0, 0x20, 0xEA, 0x3A, 0x69, 0x10,
	0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30, 0x30, 0x9D,
}

func utf16le(s string) []byte {
	b := make([]byte, 0, len(s)*2)
	for _, r := range s {
		b = append(b, byte(r), byte(r>>8))
	}
	return b
}

func ftBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// mkItem returns a zeroed shell item with its size and type fields set.
func mkItem(size int, typ byte) []byte {
	it := make([]byte, size)
	binary.LittleEndian.PutUint16(it, uint16(size))
	it[2] = typ
	return it
}

func mkGUIDItem(guid []byte) []byte {
	it := mkItem(4+len(guid), 0x1F)
	copy(it[4:], guid)
	return it
}

func mkDriveItem(letter byte) []byte {
	it := mkItem(8, 0x2F)
	it[4] = letter
	it[5] = ':'
	return it
}

// mkFSItem lays the UTF-16 name at 0x40, like the extension block of a real
// folder item. Items are padded to 0x50 so the timestamp offsets exist.
func mkFSItem(name string) []byte {
	size := 0x40 + len(name)*2 + 2
	if size < 0x50 {
		size = 0x50
	}
	it := mkItem(size, 0x31)
	copy(it[0x40:], utf16le(name))
	return it
}

func mkNetItem(unc string) []byte {
	it := mkItem(4+len(unc)+2, 0x41)
	copy(it[4:], unc)
	return it
}

func chain(items ...[]byte) []byte {
	var b []byte
	for _, it := range items {
		b = append(b, it...)
	}
	return append(b, 0x00, 0x00)
}

func mkListEx(entries ...uint32) []byte {
	b := make([]byte, 0, (len(entries)+1)*4)
	for _, e := range entries {
		b = binary.LittleEndian.AppendUint32(b, e)
	}
	return binary.LittleEndian.AppendUint32(b, 0xFFFFFFFF)
}
