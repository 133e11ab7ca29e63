package shellitem

import (
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/buf"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// Item is a zero-copy view over a single shell item's bytes. Accessors
// bounds-check on every call and degrade to empty values, the same contract
// as Parse. Accessors tied to one item family return empty values for other
// families.
type Item struct {
	data []byte
}

// First returns a view over the chain's first item. ok is false when the
// buffer does not hold one whole item.
func First(b []byte) (Item, bool) {
	size := int(buf.U16At(b, 0))
	if size <= itemTypeOffset || size > len(b) {
		return Item{}, false
	}
	return Item{data: b[:size]}, true
}

// TypeIndicator returns the item's raw type byte, 0 for the zero Item.
func (it Item) TypeIndicator() byte {
	if len(it.data) <= itemTypeOffset {
		return 0
	}
	return it.data[itemTypeOffset]
}

// Kind classifies the item.
func (it Item) Kind() Kind {
	if len(it.data) <= itemTypeOffset {
		return KindUnknown
	}
	return classify(it.data[itemTypeOffset])
}

// SpecialFolder resolves a special-folder item's class GUID against the
// well-known folder table. Empty for other families and unlisted GUIDs.
func (it Item) SpecialFolder() string {
	if it.Kind() != KindSpecialFolder {
		return ""
	}
	return specialFolderName(it.data)
}

// AttrFlags returns the low FILE_ATTRIBUTE byte of a filesystem item.
func (it Item) AttrFlags() byte {
	if it.Kind() != KindFilesystem || len(it.data) <= itemAttrOffset {
		return 0
	}
	return it.data[itemAttrOffset]
}

// Attributes expands the item's FILE_ATTRIBUTE flags into labels.
func (it Item) Attributes() []string {
	return AttributeNames(it.AttrFlags())
}

// ModifiedTime decodes the DOS modification stamp of a filesystem item.
func (it Item) ModifiedTime() string {
	if it.Kind() != KindFilesystem {
		return ""
	}
	return format.DOSDateTimeString(buf.U32At(it.data, itemDOSOffset))
}

// FileSize decodes the 32-bit size field of a filesystem item.
func (it Item) FileSize() uint32 {
	if it.Kind() != KindFilesystem {
		return 0
	}
	return buf.U32At(it.data, itemFileSizeOffset)
}

// Offsets probed for FILETIME pairs inside large extension blocks, and the
// smallest item that can carry one.
var extTimeOffsets = []int{0x18, 0x20, 0x28, 0x30, 0x38}

const extScanMinSize = 0x50

// ExtensionTimes scans the extension block of a large filesystem item for
// plausible FILETIMEs. The first hit is taken as creation, the second as
// last access.
func (it Item) ExtensionTimes() (created, accessed string) {
	if it.Kind() != KindFilesystem || len(it.data) < extScanMinSize {
		return "", ""
	}
	for _, off := range extTimeOffsets {
		v := buf.U64At(it.data, off)
		if !format.PlausibleFiletime(v) {
			continue
		}
		ts := format.FiletimeValueString(v)
		switch {
		case ts != "" && created == "":
			created = ts
		case ts != "" && accessed == "":
			accessed = ts
		}
	}
	return created, accessed
}
