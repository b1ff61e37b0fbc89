// Package table loads caller-declared character-set tables. A table document
// holds a single "charsets" list of charsets.Entry rows:
//
//	charsets:
//	  - id: UTF8
//	    name: UTF-8
//	    aliases: [UTF8, UTF_8]
//
// The same shape is accepted as JSON ({"charsets": [...]}) and TOML
// ([[charsets]] tables). Unknown fields are rejected in every format.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/charsets"
)

// Format represents the table document format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
	FormatTOML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatAuto, fmt.Errorf("table: cannot detect format of %q", path)
}

// Document is the top-level shape of a table file.
type Document struct {
	Charsets []charsets.Entry `yaml:"charsets" json:"charsets" toml:"charsets"`
}

// Decode reads a table document in format f. FormatAuto is not accepted
// here because there is no file name to inspect.
func Decode(r io.Reader, f Format) ([]charsets.Entry, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("table: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("table: decode json: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("table: decode toml: %w", err)
		}
		if und := md.Undecoded(); len(und) > 0 {
			return nil, fmt.Errorf("table: decode toml: unknown field %q", und[0].String())
		}
	default:
		return nil, fmt.Errorf("table: unsupported format %s", f)
	}
	return doc.Charsets, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(b []byte, f Format) ([]charsets.Entry, error) {
	return Decode(bytes.NewReader(b), f)
}

// ReadFile reads the entries of a table file. With FormatAuto the format is
// taken from the extension.
func ReadFile(path string, f Format) ([]charsets.Entry, error) {
	if f == FormatAuto {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer fh.Close()
	return Decode(fh, f)
}

// Load reads a table file and builds its registry. Table defects are
// returned as charsets.Issues.
func Load(path string) (*charsets.Registry, error) {
	entries, err := ReadFile(path, FormatAuto)
	if err != nil {
		return nil, err
	}
	reg, err := charsets.NewRegistry(entries)
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", path, err)
	}
	return reg, nil
}

// Encode writes entries as a table document in format f.
func Encode(w io.Writer, entries []charsets.Entry, f Format) error {
	doc := Document{Charsets: entries}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("table: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("table: encode json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("table: encode toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("table: unsupported format %s", f)
}

// Entries rebuilds table rows from a registry, in declaration order. Entry
// IDs are not kept by a registry and come back empty.
func Entries(reg *charsets.Registry) []charsets.Entry {
	out := make([]charsets.Entry, 0, reg.Len())
	for _, cs := range reg.All() {
		mime, _ := cs.PreferredMIMEName()
		out = append(out, charsets.Entry{Name: cs.Name(), MIME: mime, Aliases: cs.Aliases()})
	}
	return out
}
