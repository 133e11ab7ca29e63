package shellitem

const guidLen = 16

// Folder class GUIDs that show up as PIDL roots. Unknown GUIDs resolve to "".
var wellKnownFolders = map[string]string{
	"20D04FE0-3AEA-1069-A2D8-08002B30309D": "My Computer",
	"450D8FBA-AD25-11D0-98A8-0800361B1103": "My Documents",
	"208D2C60-3AEA-1069-A2D7-08002B30309D": "My Network Places",
	"645FF040-5081-101B-9F08-00AA002F954E": "Recycle Bin",
	"871C5380-42A0-1069-A2EA-08002B30309D": "Internet Explorer",
	"F02C1A0D-BE21-4350-88B0-7367FC96EF3C": "Network",
}

// FolderNameByGUID resolves a rendered GUID to its display name, or "".
func FolderNameByGUID(guid string) string {
	return wellKnownFolders[guid]
}
