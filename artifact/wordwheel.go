package artifact

import (
	"strings"

	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/mru"
	"github.com/Ghassan-elsman/Crow-Eye-main-sub002/internal/format"
)

// Search term categories reported by ParseWordWheel.
const (
	SearchTypeFile    = "File"
	SearchTypeNetwork = "Network"
	SearchTypeGeneral = "General"
)

// WordWheelEntry is one Explorer search-box term.
type WordWheelEntry struct {
	SearchTerm  string
	SearchType  string
	MRUPosition int
}

// ParseWordWheel decodes a WordWheelQuery value: the UTF-16LE search term, a
// coarse categorization of what was searched for, and the term's recency
// from the sibling MRUListEx.
func ParseWordWheel(name string, data, mruListEx []byte) WordWheelEntry {
	e := WordWheelEntry{SearchType: SearchTypeGeneral, MRUPosition: -1}
	if len(data) == 0 {
		return e
	}
	e.SearchTerm = format.UTF16String(data, 0)
	if e.SearchTerm == "" {
		return e
	}
	e.SearchType = categorizeSearch(e.SearchTerm)
	if len(mruListEx) > 0 && name != "" {
		e.MRUPosition = mru.PositionOf(mru.ParseListEx(mruListEx), name)
	}
	return e
}

var searchNetworkIndicators = []string{`\\`, "http://", "https://", "ftp://", "://", "www."}

var searchFileExtensions = []string{
	".txt", ".doc", ".docx", ".pdf", ".xls", ".xlsx", ".ppt", ".pptx",
	".jpg", ".png", ".gif", ".mp3", ".mp4", ".avi", ".zip", ".rar",
	".exe", ".dll",
}

func categorizeSearch(term string) string {
	lower := strings.ToLower(term)
	for _, ind := range searchNetworkIndicators {
		if strings.Contains(lower, ind) {
			return SearchTypeNetwork
		}
	}
	for _, ext := range searchFileExtensions {
		if strings.Contains(lower, ext) {
			return SearchTypeFile
		}
	}
	if len(term) >= 2 && term[1] == ':' {
		return SearchTypeFile
	}
	if strings.ContainsAny(term, `\/`) {
		return SearchTypeFile
	}
	return SearchTypeGeneral
}
