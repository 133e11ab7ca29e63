// Package artifact decodes the binary value layouts behind common Windows
// Registry forensic artifacts.
//
// # Overview
//
// Explorer and several Windows services persist user activity in registry
// values whose payloads are undocumented binary blobs: shell item lists
// (PIDLs), MRU orderings, FILETIME and DOS timestamps, ROT13-obfuscated
// names, and version-dispatched counter blocks. This package turns those raw
// bytes into flat, field-stable records suitable for timelines and storage.
//
// # Decoders
//
// One decoder per artifact family, each a pure function over the value bytes
// and, where the artifact needs it, the value name and sibling MRU value:
//
//   - ParseOpenSave: OpenSavePidlMRU dialog history
//   - ParseLastSave: LastVisitedPidlMRU application/folder pairs
//   - ParseRecentDocs: RecentDocs display names
//   - ParseBAM / ParseDAM: Background/Desktop Activity Moderator execution
//   - ParseUserAssist: GUI launch counters behind ROT13 value names
//   - ParseRunMRU: Run dialog command history
//   - ParseMUICache: cached application display names
//   - ParseWordWheel: Explorer search terms
//   - ParseShellbag: folder view history (BagMRU)
//   - ParseMountedDevice: volume to USB-device bindings
//
// # Contract
//
// Every decoder is total and deterministic: any input, including empty or
// truncated buffers, produces a record with all fields present and safe
// defaults ("" for strings, 0 for counters, -1 for MRU positions). Decoders
// never panic on data-shape problems and report no errors; a field that
// cannot be recovered simply keeps its default while sibling fields still
// populate. Decoding one value can never affect another, so records may be
// decoded from parallel goroutines without coordination.
//
// # Related Packages
//
//   - github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/mru: MRU ordering values
//   - github.com/Ghassan-elsman/Crow-Eye-main-sub002/artifact/shellitem: PIDL walking
package artifact
