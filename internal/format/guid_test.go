package format

import "testing"

func TestGUIDString(t *testing.T) {
	// CLSID_MyComputer, the canonical desktop PIDL root.
	b := []byte{
		0xE0, 0x4F, 0xD0, 0x20, 0xEA, 0x3A, 0x69, 0x10,
		0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30, 0x30, 0x9D,
	}
	want := "20D04FE0-3AEA-1069-A2D8-08002B30309D"
	if got := GUIDString(b); got != want {
		t.Fatalf("GUIDString = %q, want %q", got, want)
	}
	if got := GUIDString(b[:15]); got != "" {
		t.Fatalf("short GUID should be empty, got %q", got)
	}
	if got := GUIDString(append(b, 0x00)); got != "" {
		t.Fatalf("long GUID should be empty, got %q", got)
	}
	if got := GUIDString(nil); got != "" {
		t.Fatalf("nil GUID should be empty, got %q", got)
	}
}

func TestGUIDStringLeadingZeros(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 0x01
	b[15] = 0x02
	want := "00000001-0000-0000-0000-000000000002"
	if got := GUIDString(b); got != want {
		t.Fatalf("GUIDString = %q, want %q", got, want)
	}
}
