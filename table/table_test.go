package table

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/charsets"
)

var wantUnicode = []charsets.Entry{
	{ID: "UTF8", Name: "UTF-8", Aliases: []string{"UTF8", "UTF_8"}},
	{ID: "UTF16", Name: "UTF-16", Aliases: []string{"UTF16", "UTF_16"}},
	{ID: "UTF32", Name: "UTF-32", MIME: "UTF-32", Aliases: []string{"UTF32", "UTF_32"}},
}

func TestReadFile_AllFormats(t *testing.T) {
	for _, name := range []string{"unicode.yaml", "unicode.json", "unicode.toml"} {
		got, err := ReadFile(filepath.Join("testdata", name), FormatAuto)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, wantUnicode) {
			t.Fatalf("%s: got %+v", name, got)
		}
	}
}

func TestLoad_ResolvesCustomTable(t *testing.T) {
	reg, err := Load(filepath.Join("testdata", "unicode.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", reg.Len())
	}
	for _, in := range []string{"utf-8", "UTF8", "Utf_8"} {
		cs, err := reg.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if cs.Name() != "UTF-8" {
			t.Fatalf("parse %q: got %s", in, cs)
		}
	}
}

func TestLoad_DuplicateKeyIsReported(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate.yaml"))
	iss, ok := charsets.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != charsets.CodeDuplicateKey || iss[0].Path != "/1" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestDecode_UnknownFieldsRejected(t *testing.T) {
	cases := map[Format]string{
		FormatYAML: "charsets:\n  - name: X\n    label: Y\n",
		FormatJSON: `{"charsets":[{"name":"X","label":"Y"}]}`,
		FormatTOML: "[[charsets]]\nname = \"X\"\nlabel = \"Y\"\n",
	}
	for f, doc := range cases {
		if _, err := DecodeBytes([]byte(doc), f); err == nil {
			t.Fatalf("%s: expected unknown field error", f)
		}
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	got, err := DecodeBytes(nil, FormatYAML)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no entries and no error, got %v, %v", got, err)
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.yml": FormatYAML, "A.YAML": FormatYAML, "b.json": FormatJSON, "c.toml": FormatTOML} {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Fatalf("%s: got %s, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("table.csv"); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
	if _, err := DecodeBytes([]byte("{}"), FormatAuto); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestEncode_ReadsBack(t *testing.T) {
	reg, err := charsets.NewRegistry(wantUnicode)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	rows := Entries(reg)
	for _, f := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		var buf bytes.Buffer
		if err := Encode(&buf, rows, f); err != nil {
			t.Fatalf("%s: encode: %v", f, err)
		}
		back, err := Decode(&buf, f)
		if err != nil {
			t.Fatalf("%s: decode: %v", f, err)
		}
		if !reflect.DeepEqual(back, rows) {
			t.Fatalf("%s: got %+v, want %+v", f, back, rows)
		}
	}
}
