package iana

import (
	"testing"

	"golang.org/x/text/encoding/ianaindex"
)

// The names golang.org/x/text reports for its encodings must land on the same
// record as the label used to find them.
func TestAgreesWithXTextIndex(t *testing.T) {
	labels := []string{
		"utf-8", "iso-8859-1", "iso-8859-2", "iso-8859-15", "windows-1250",
		"windows-1252", "koi8-r", "koi8-u", "ibm866", "macintosh",
		"shift_jis", "euc-jp", "iso-2022-jp", "euc-kr", "gbk", "gb18030",
		"big5", "utf-16be", "utf-16le",
	}
	for _, label := range labels {
		want, err := Parse(label)
		if err != nil {
			t.Fatalf("parse %q: %v", label, err)
		}
		enc, err := ianaindex.IANA.Encoding(label)
		if err != nil || enc == nil {
			continue // not supported by x/text; nothing to compare
		}
		for _, idx := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
			name, err := idx.Name(enc)
			if err != nil || name == "" {
				continue
			}
			got, err := Parse(name)
			if err != nil {
				t.Fatalf("%q: x/text name %q does not resolve: %v", label, name, err)
			}
			if got != want {
				t.Fatalf("%q: x/text name %q resolves to %s, want %s", label, name, got, want)
			}
		}
	}
}
