package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunMRU(t *testing.T) {
	e := ParseRunMRU("b", `notepad\1`, "bac")
	require.Equal(t, "notepad", e.Command)
	assert.Equal(t, 0, e.MRUPosition)
}

func TestParseRunMRU_KeepsNonNumericSuffix(t *testing.T) {
	e := ParseRunMRU("a", `C:\tools\run.bat`, "ab")
	require.Equal(t, `C:\tools\run.bat`, e.Command)
	assert.Equal(t, 0, e.MRUPosition)
}

func TestParseRunMRU_MultiDigitSuffix(t *testing.T) {
	e := ParseRunMRU("c", `cmd /k\12`, "abc")
	require.Equal(t, "cmd /k", e.Command)
	assert.Equal(t, 2, e.MRUPosition)
}

func TestParseRunMRU_TrailingBackslash(t *testing.T) {
	e := ParseRunMRU("a", `dir\`, "a")
	assert.Equal(t, `dir\`, e.Command)
}

func TestParseRunMRU_NameAbsentFromList(t *testing.T) {
	e := ParseRunMRU("z", "calc", "abc")
	require.Equal(t, "calc", e.Command)
	assert.Equal(t, -1, e.MRUPosition)
}

func TestParseRunMRU_Empty(t *testing.T) {
	assert.Equal(t, RunMRUEntry{MRUPosition: -1}, ParseRunMRU("", "calc", "abc"))
	assert.Equal(t, RunMRUEntry{MRUPosition: -1}, ParseRunMRU("a", "", "abc"))
	assert.Equal(t, -1, ParseRunMRU("a", "calc", "").MRUPosition)
}
