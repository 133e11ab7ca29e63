package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMUICache(t *testing.T) {
	e := ParseMUICache(`C:\Program Files\Tool\tool.exe`, "My Tool")
	require.Equal(t, `C:\Program Files\Tool\tool.exe`, e.AppPath)
	assert.Equal(t, "My Tool", e.AppName)
	assert.Equal(t, "exe", e.FileExtension)
}

func TestParseMUICache_NameFallsBackToPath(t *testing.T) {
	e := ParseMUICache(`C:\Apps\helper.dll`, "")
	require.Equal(t, "helper", e.AppName)
	assert.Equal(t, "dll", e.FileExtension)
}

func TestParseMUICache_NoExtension(t *testing.T) {
	e := ParseMUICache(`C:\Apps\helper`, "")
	assert.Equal(t, "helper", e.AppName)
	assert.Equal(t, "", e.FileExtension)
}

func TestParseMUICache_Empty(t *testing.T) {
	assert.Equal(t, MUICacheEntry{}, ParseMUICache("", "anything"))
}
