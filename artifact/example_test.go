package artifact_test

import (
	"fmt"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact"
)

// Example decodes a UserAssist launch counter.
func Example() {
	data := []byte{
		0x05, 0x00, 0x00, 0x00, // version
		0x07, 0x00, 0x00, 0x00, // run count
		0x02, 0x00, 0x00, 0x00, // focus count
		0xE8, 0x03, 0x00, 0x00, // focus time, ms
		0x00, 0x00, 0x05, 0x69, 0x36, 0xC0, 0xD5, 0x01, // FILETIME
	}

	e := artifact.ParseUserAssist("HRZR_PGYFRFFVBA", data)
	fmt.Println(e.ProgramPath, e.RunCount, e.LastExecution)
	// Output: UEME_CTLSESSION 7 2020-01-01 00:00:00
}

// ExampleParseRecentDocs recovers a document name from its registry value.
func ExampleParseRecentDocs() {
	data := []byte{
		'b', 0, 'u', 0, 'd', 0, 'g', 0, 'e', 0, 't', 0,
		'.', 0, 'x', 0, 'l', 0, 's', 0, 'x', 0, 0, 0,
	}

	fmt.Println(artifact.ParseRecentDocs(data))
	// Output: budget.xlsx
}

// ExampleParseRunMRU shows suffix stripping and MRUList ranking.
func ExampleParseRunMRU() {
	e := artifact.ParseRunMRU("b", `notepad\1`, "bac")
	fmt.Println(e.Command, e.MRUPosition)
	// Output: notepad 0
}

// ExampleParseWordWheel decodes a search term with its MRUListEx sibling.
func ExampleParseWordWheel() {
	term := []byte{
		'r', 0, 'e', 0, 'p', 0, 'o', 0, 'r', 0, 't', 0,
		'.', 0, 'd', 0, 'o', 0, 'c', 0, 'x', 0, 0, 0,
	}
	order := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
	}

	e := artifact.ParseWordWheel("0", term, order)
	fmt.Println(e.SearchTerm, e.SearchType, e.MRUPosition)
	// Output: report.docx File 1
}
