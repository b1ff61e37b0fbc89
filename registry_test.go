package charsets_test

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/reoring/charsets"
)

var unicodeTable = []charsets.Entry{
	{Name: "UTF-8", Aliases: []string{"UTF8", "UTF_8"}},
	{Name: "UTF-16", Aliases: []string{"UTF16", "UTF_16"}},
	{Name: "UTF-32", MIME: "UTF-32", Aliases: []string{"UTF32", "UTF_32"}},
}

func mustUnicode(t testing.TB) *charsets.Registry {
	t.Helper()
	reg, err := charsets.NewRegistry(unicodeTable)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func TestRegistry_Parse_CaseInsensitive(t *testing.T) {
	reg := mustUnicode(t)
	for _, in := range []string{"utf-8", "UTF8", "Utf_8", "UTF-8", "uTf8"} {
		cs, err := reg.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if cs.Name() != "UTF-8" || cs.Index() != 0 {
			t.Fatalf("parse %q: got %s at %d", in, cs, cs.Index())
		}
	}
}

func TestRegistry_Parse_EveryKeyInEveryCase(t *testing.T) {
	reg := mustUnicode(t)
	for i, cs := range reg.All() {
		spellings := append([]string{cs.Name()}, cs.Aliases()...)
		for _, s := range spellings {
			for _, v := range []string{s, strings.ToLower(s), strings.ToUpper(s)} {
				got, err := reg.Parse(v)
				if err != nil {
					t.Fatalf("parse %q: %v", v, err)
				}
				if got.Index() != i || !got.Equal(cs) {
					t.Fatalf("parse %q: got %s, want %s", v, got, cs)
				}
			}
		}
	}
}

func TestRegistry_Parse_Unknown(t *testing.T) {
	reg := mustUnicode(t)
	cs, err := reg.Parse("UTF-9")
	if err == nil {
		t.Fatalf("expected error, got %s", cs)
	}
	if !cs.IsZero() {
		t.Fatalf("expected zero charset on failure")
	}
	e, ok := charsets.AsInvalidName(err)
	if !ok {
		t.Fatalf("expected InvalidNameError, got %T", err)
	}
	if e.Found != "UTF-9" {
		t.Fatalf("found = %q", e.Found)
	}
	for _, want := range []string{"UTF-8", "UTF8", "UTF_8", "UTF-32"} {
		if !slices.Contains(e.Required, want) {
			t.Fatalf("required %v lacks %q", e.Required, want)
		}
	}
	if !slices.Equal(e.Required, reg.MatchKeys()) {
		t.Fatalf("required should list every key in declaration order: %v", e.Required)
	}
}

func TestRegistry_Parse_NonASCIIPassesThrough(t *testing.T) {
	reg := charsets.MustNewRegistry([]charsets.Entry{{Name: "ÜTF-8"}})
	// Only ASCII letters are folded; "ü" is not upper-cased to "Ü".
	if _, err := reg.Parse("ütf-8"); err == nil {
		t.Fatalf("non-ASCII letters must not be folded")
	}
	if _, err := reg.Parse("Ütf-8"); err != nil {
		t.Fatalf("ASCII part should fold: %v", err)
	}
	if _, err := reg.Parse("UTF-8ı"); err == nil {
		t.Fatalf("unexpected match")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := mustUnicode(t)
	if cs, ok := reg.Lookup("utf32"); !ok || cs.Name() != "UTF-32" {
		t.Fatalf("lookup utf32: %v %v", cs, ok)
	}
	if _, ok := reg.Lookup(""); ok {
		t.Fatalf("empty input must not match")
	}
}

func TestRegistry_Enumeration(t *testing.T) {
	reg := mustUnicode(t)
	if reg.Len() != 3 {
		t.Fatalf("len = %d", reg.Len())
	}
	all := reg.Charsets()
	for i, e := range unicodeTable {
		if all[i].Name() != e.Name || reg.At(i).Name() != e.Name {
			t.Fatalf("record %d: got %s, want %s", i, all[i], e.Name)
		}
	}
	n := 0
	for range reg.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iteration should stop early")
	}
	want := []string{"UTF-8", "UTF8", "UTF_8", "UTF-16", "UTF16", "UTF_16", "UTF-32", "UTF32", "UTF_32"}
	if got := reg.MatchKeys(); !slices.Equal(got, want) {
		t.Fatalf("match keys = %v", got)
	}
}

func TestNewRegistry_Issues(t *testing.T) {
	if _, err := charsets.NewRegistry(nil); err == nil {
		t.Fatalf("expected error for empty table")
	} else if iss, _ := charsets.AsIssues(err); len(iss) != 1 || iss[0].Code != charsets.CodeTooSmall {
		t.Fatalf("unexpected issues: %v", err)
	}

	_, err := charsets.NewRegistry([]charsets.Entry{
		{Name: "UTF-8", Aliases: []string{"UTF8"}},
		{Name: "", Aliases: []string{"x"}},
		{Name: "UTF-16", Aliases: []string{"", "utf8"}},
	})
	iss, ok := charsets.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	got := make([]string, len(iss))
	for i, it := range iss {
		got[i] = it.Code + " " + it.Path
	}
	want := []string{
		"required /1/name",
		"required /2/aliases/0",
		"duplicate_key /2",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("issues = %v", got)
	}

	// Keys of an entry that is itself invalid still count as claimed.
	_, err = charsets.NewRegistry([]charsets.Entry{
		{Name: "", Aliases: []string{"latin1"}},
		{Name: "ISO_8859-1:1987", Aliases: []string{"LATIN1"}},
	})
	iss, _ = charsets.AsIssues(err)
	if len(iss) != 2 || iss[1].Code != charsets.CodeDuplicateKey || iss[1].Path != "/1" {
		t.Fatalf("expected required at /0/name and duplicate_key at /1, got %v", err)
	}

	_, err = charsets.NewRegistry([]charsets.Entry{
		{Name: "UTF-8", Aliases: []string{"UTF8"}},
		{Name: "UTF-16", Aliases: []string{"utf8"}},
	})
	iss, _ = charsets.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != charsets.CodeDuplicateKey || iss[0].Path != "/1" {
		t.Fatalf("expected duplicate_key at /1, got %v", err)
	}
	if iss[0].Params["key"] != "UTF8" || iss[0].Params["first"] != 0 {
		t.Fatalf("unexpected params: %v", iss[0].Params)
	}
}

func TestNewRegistry_RepeatedSpellingWithinEntry(t *testing.T) {
	reg, err := charsets.NewRegistry([]charsets.Entry{{Name: "US-ASCII", Aliases: []string{"us", "US-ASCII", "US"}}})
	if err != nil {
		t.Fatalf("repeats inside one entry are allowed: %v", err)
	}
	if got := reg.At(0).MatchKeys(); !slices.Equal(got, []string{"US-ASCII", "US"}) {
		t.Fatalf("match keys = %v", got)
	}
	if got := reg.At(0).Aliases(); len(got) != 3 {
		t.Fatalf("aliases keep display order and repeats: %v", got)
	}
}

func TestMustNewRegistry_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	charsets.MustNewRegistry(nil)
}

func TestRegistry_ConcurrentParse(t *testing.T) {
	reg := mustUnicode(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if cs, err := reg.Parse("utf_16"); err != nil || cs.Name() != "UTF-16" {
					t.Errorf("parse: %v %v", cs, err)
					return
				}
				if _, err := reg.Parse("nope"); err == nil {
					t.Errorf("expected failure")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkRegistry_Parse(b *testing.B) {
	reg := mustUnicode(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Parse("utf_32"); err != nil {
			b.Fatal(err)
		}
	}
}
