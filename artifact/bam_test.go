package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBAM(t *testing.T) {
	data := append(ftBytes(ft2020), make([]byte, 16)...)

	e := ParseBAM(`\Device\HarddiskVolume2\Windows\System32\notepad.exe`, data)
	require.Equal(t, `\Device\HarddiskVolume2\Windows\System32\notepad.exe`, e.ProcessPath)
	assert.Equal(t, "2020-01-01 00:00:00", e.LastExecution)
}

func TestParseBAM_ShortPayload(t *testing.T) {
	e := ParseBAM("app.exe", []byte{0x01, 0x02})
	require.Equal(t, "app.exe", e.ProcessPath)
	assert.Equal(t, "", e.LastExecution)
}

func TestParseBAM_TrimsName(t *testing.T) {
	e := ParseBAM("  app.exe  ", nil)
	assert.Equal(t, "app.exe", e.ProcessPath)
}

func TestParseBAM_EmptyName(t *testing.T) {
	assert.Equal(t, BAMEntry{}, ParseBAM("", ftBytes(ft2020)))
}

func TestParseDAM_NameCarriesPath(t *testing.T) {
	e := ParseDAM(`C:\Windows\System32\svchost.exe`, ftBytes(ft2021))
	require.Equal(t, `C:\Windows\System32\svchost.exe`, e.ProcessPath)
	assert.Equal(t, "svchost", e.AppName)
	assert.Equal(t, "2021-01-01 00:00:00", e.LastExecution)
}

func TestParseDAM_PathAfterTimestamp(t *testing.T) {
	data := ftBytes(ft2020)
	data = append(data, utf16le(`C:\Tools\scan.exe`)...)
	data = append(data, 0x00, 0x00)

	e := ParseDAM("", data)
	require.Equal(t, `C:\Tools\scan.exe`, e.ProcessPath)
	assert.Equal(t, "scan", e.AppName)
	assert.Equal(t, "2020-01-01 00:00:00", e.LastExecution)
}

func TestParseDAM_UppercaseExtension(t *testing.T) {
	e := ParseDAM(`C:\APPS\TOOL.EXE`, nil)
	assert.Equal(t, "TOOL", e.AppName)
}

func TestParseDAM_Empty(t *testing.T) {
	assert.Equal(t, DAMEntry{}, ParseDAM("", nil))
	assert.Equal(t, DAMEntry{}, ParseDAM("", []byte{0x01}))
}
