package shellitem

// FILE_ATTRIBUTE bits carried in the low flags byte of filesystem items.
const (
	AttrReadOnly  byte = 0x01
	AttrHidden    byte = 0x02
	AttrSystem    byte = 0x04
	AttrDirectory byte = 0x10
	AttrArchive   byte = 0x20
)

var attrNames = []struct {
	mask byte
	name string
}{
	{AttrReadOnly, "readonly"},
	{AttrHidden, "hidden"},
	{AttrSystem, "system"},
	{AttrDirectory, "directory"},
	{AttrArchive, "archive"},
}

// AttributeNames expands a flags byte into the matching attribute labels,
// in bit order.
func AttributeNames(flags byte) []string {
	var names []string
	for _, a := range attrNames {
		if flags&a.mask != 0 {
			names = append(names, a.name)
		}
	}
	return names
}
