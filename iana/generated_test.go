package iana

import (
	"bytes"
	"os"
	"testing"

	"github.com/reoring/charsets/internal/gen"
	"github.com/reoring/charsets/table"
)

// tables.go must be what charsetgen produces from character-sets.yaml.
func TestTables_UpToDate(t *testing.T) {
	src, err := table.ReadFile("character-sets.yaml", table.FormatAuto)
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	want, err := gen.RenderFile(gen.File{
		Package: "iana",
		Type:    "ID",
		Source:  "character-sets.yaml",
		Entries: src,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got, err := os.ReadFile("tables.go")
	if err != nil {
		t.Fatalf("read tables.go: %v", err)
	}
	if bytes.Equal(got, want) {
		return
	}
	gl, wl := bytes.Split(got, []byte("\n")), bytes.Split(want, []byte("\n"))
	for i := 0; i < len(gl) && i < len(wl); i++ {
		if !bytes.Equal(gl[i], wl[i]) {
			t.Fatalf("tables.go is stale at line %d (run go generate):\n got: %s\nwant: %s", i+1, gl[i], wl[i])
		}
	}
	t.Fatalf("tables.go is stale: %d lines, want %d (run go generate)", len(gl), len(wl))
}
