// Package gen renders a character-set table as Go source: one constant per
// entry plus the entry array the constants index.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"text/template"

	"github.com/reoring/charsets"
)

// File describes one generated Go file.
type File struct {
	Package string           // package clause
	Type    string           // enumeration type, e.g. "ID"
	Source  string           // table document name, recorded in the header
	Entries []charsets.Entry // rows in declaration order; every ID must be set
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by charsetgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "github.com/reoring/charsets"

const (
	Unknown {{.Type}} = iota
{{- range .Entries}}
	{{.ID}}
{{- end}}
)

const max{{.Type}} = {{(index .Entries .Last).ID}}

var entries = [...]charsets.Entry{
{{- range .Entries}}
	{ID: {{printf "%q" .ID}}, Name: {{printf "%q" .Name}}{{if .MIME}}, MIME: {{printf "%q" .MIME}}{{end}}{{if .Aliases}}, Aliases: []string{ {{- range $i, $a := .Aliases}}{{if $i}}, {{end}}{{printf "%q" $a}}{{end -}} }{{end}}},
{{- end}}
}
`))

// RenderFile validates f and returns gofmt-formatted Go source.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" || !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("gen: invalid package name %q", f.Package)
	}
	if f.Type == "" {
		f.Type = "ID"
	}
	if !token.IsIdentifier(f.Type) || !token.IsExported(f.Type) {
		return nil, fmt.Errorf("gen: invalid type name %q", f.Type)
	}
	if err := checkIdents(f.Type, f.Entries); err != nil {
		return nil, err
	}
	if f.Source == "" {
		f.Source = "table"
	}

	data := struct {
		File
		Last int
	}{f, len(f.Entries) - 1}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return out, nil
}

func checkIdents(typ string, entries []charsets.Entry) error {
	if len(entries) == 0 {
		return errors.New("gen: no entries")
	}
	seen := map[string]int{typ: -1, "Unknown": -1, "max" + typ: -1}
	var errs []error
	for i, e := range entries {
		switch {
		case e.ID == "":
			errs = append(errs, fmt.Errorf("gen: entry %d (%s): missing id", i, e.Name))
			continue
		case !token.IsIdentifier(e.ID) || !token.IsExported(e.ID):
			errs = append(errs, fmt.Errorf("gen: entry %d (%s): id %q is not an exported identifier", i, e.Name, e.ID))
			continue
		}
		if j, dup := seen[e.ID]; dup {
			if j < 0 {
				errs = append(errs, fmt.Errorf("gen: entry %d (%s): id %q is reserved", i, e.Name, e.ID))
			} else {
				errs = append(errs, fmt.Errorf("gen: entry %d (%s): id %q already used by entry %d", i, e.Name, e.ID, j))
			}
			continue
		}
		seen[e.ID] = i
	}
	return errors.Join(errs...)
}
