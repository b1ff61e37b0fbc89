// Package charsets names character sets and resolves them from any of their
// registered spellings. It provides:
//
// - The CharacterSet contract (Name / PreferredMIMEName / Aliases) and a
//   cross-kind Equal that compares canonical names
// - Record and Registry: an immutable table of character-set definitions
//   built once from Entry rows
// - Charset: the enumeration value returned by Registry.Parse
// - A stable error model: InvalidNameError for unresolvable input and
//   Issues (JSON Pointer, code, message) for malformed tables
//
// Matching is case-insensitive using ASCII-only upper-casing. Every match
// key (upper-cased canonical name or alias) must be unique across a
// registry; NewRegistry rejects tables that violate this.
//
// Layout:
// - The built-in IANA table and its ID enumeration live under iana/.
// - Loaders for caller-declared tables (YAML, JSON, TOML) live under table/.
// - The table-to-Go generator is cmd/charsetgen, the CLI is cmd/charsets.
//
// Typical usage:
//
//	id, err := iana.Parse("utf8")          // iana.UTF8
//	reg, err := charsets.NewRegistry(rows) // custom table
//	cs, err := reg.Parse("Latin1")
//	ok := charsets.Equal(cs, iana.ISOLatin1)
//
// Character sets are only identified and named here; no transcoding is
// performed.
package charsets
