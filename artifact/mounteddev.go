package artifact

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// MountedDeviceEntry binds a mounted volume to the USB device it lives on.
type MountedDeviceEntry struct {
	DriveLetter string
	VolumeGUID  string
	DeviceClass string
	Instance    string
}

// Value-name prefixes under HKLM\SYSTEM\MountedDevices.
const (
	dosDevicesPrefix = `\DosDevices\`
	volumeGUIDPrefix = `\??\Volume`
)

// ParseMountedDevice decodes one MountedDevices value. The value name
// carries the drive letter or volume GUID; the payload is the UTF-16LE
// device interface path, mined for its USBSTOR class and instance segments.
// Non-USB volumes decode with empty class and instance.
func ParseMountedDevice(name string, data []byte) MountedDeviceEntry {
	var e MountedDeviceEntry
	switch {
	case strings.HasPrefix(name, dosDevicesPrefix):
		e.DriveLetter = strings.TrimPrefix(name, dosDevicesPrefix)
	case strings.HasPrefix(name, volumeGUIDPrefix):
		e.VolumeGUID = strings.Trim(strings.TrimPrefix(name, volumeGUIDPrefix), "{}")
	}
	e.DeviceClass, e.Instance = usbstorSegments(format.DecodeUTF16(data))
	return e
}

// usbstorSegments splits "...USBSTOR#<class>#<instance>#{...}" out of a
// device interface path.
func usbstorSegments(path string) (class, instance string) {
	lower := strings.ToLower(path)
	i := strings.Index(lower, "usbstor#")
	if i < 0 {
		return "", ""
	}
	rest := path[i+len("usbstor#"):]
	end := strings.Index(strings.ToLower(rest), "#{")
	if end < 0 {
		return "", ""
	}
	parts := strings.Split(rest[:end], "#")
	if len(parts) < 2 {
		return "", ""
	}
	return normalizeDeviceClass(parts[0]), parts[1]
}

// normalizeDeviceClass canonicalizes the '&'-joined class tokens the way
// Device Manager renders them: Disk, Ven_*, Prod_*, Rev_*.
func normalizeDeviceClass(class string) string {
	tokens := strings.Split(class, "&")
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(lower, "disk"):
			tokens[i] = "Disk"
		case strings.HasPrefix(lower, "ven_"):
			tokens[i] = "Ven_" + tok[4:]
		case strings.HasPrefix(lower, "prod_"):
			tokens[i] = "Prod_" + tok[5:]
		case strings.HasPrefix(lower, "rev_"):
			tokens[i] = "Rev_" + tok[4:]
		}
	}
	return strings.Join(tokens, "&")
}
