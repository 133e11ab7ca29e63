// Package format houses low-level decoders for the binary layouts that occur
// inside Windows Registry value data: FILETIME and DOS timestamps, UTF-16LE
// text, GUIDs, and the ROT13 value-name obfuscation. The goal is to keep the
// conversions focused and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// Every function in this package is total: malformed or truncated input
// produces the type's empty value, never a panic or an error.
package format
