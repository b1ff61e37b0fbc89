package charsets_test

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/reoring/charsets"
)

func TestRecord_Projections(t *testing.T) {
	r, err := charsets.NewRecord(charsets.Entry{Name: "UTF-8", Aliases: []string{"UTF8", "UTF_8"}})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := fmt.Sprint(r); got != "UTF-8" {
		t.Fatalf("display = %q", got)
	}
	if !bytes.Equal(r.Bytes(), []byte("UTF-8")) || !bytes.Equal(charsets.Bytes(r), []byte("UTF-8")) {
		t.Fatalf("bytes = %q", r.Bytes())
	}
	if _, ok := r.PreferredMIMEName(); ok {
		t.Fatalf("no MIME name registered")
	}
	if got := charsets.Label(r); got != "UTF-8" {
		t.Fatalf("label falls back to name, got %q", got)
	}

	aliases := r.Aliases()
	aliases[0] = "mutated"
	if r.Aliases()[0] != "UTF8" {
		t.Fatalf("Aliases must return a copy")
	}
}

func TestRecord_Parse_FixedType(t *testing.T) {
	r, _ := charsets.NewRecord(charsets.Entry{Name: "UTF-8", Aliases: []string{"UTF8", "UTF_8"}})
	for _, in := range []string{"utf-8", "UTF8", "Utf_8"} {
		got, err := r.Parse(in)
		if err != nil || got != r {
			t.Fatalf("parse %q: %v %v", in, got, err)
		}
	}
	_, err := r.Parse("UTF-16")
	e, ok := charsets.AsInvalidName(err)
	if !ok {
		t.Fatalf("expected InvalidNameError, got %v", err)
	}
	if !slices.Equal(e.Required, []string{"UTF-8", "UTF8", "UTF_8"}) || e.Found != "UTF-16" {
		t.Fatalf("unexpected error data: %+v", e)
	}
}

func TestNewRecord_RequiresName(t *testing.T) {
	_, err := charsets.NewRecord(charsets.Entry{Aliases: []string{"x"}})
	iss, ok := charsets.AsIssues(err)
	if !ok || iss[0].Code != charsets.CodeRequired || iss[0].Path != "/name" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEqual_CrossKind(t *testing.T) {
	reg := mustUnicode(t)
	utf8 := reg.At(0)
	rec, _ := charsets.NewRecord(charsets.Entry{Name: "UTF-8"})
	other := charsets.MustNewRegistry([]charsets.Entry{{Name: "UTF-8", Aliases: []string{"unicode-1-1-utf-8"}}}).At(0)

	pairs := []struct {
		a, b charsets.CharacterSet
		want bool
	}{
		{utf8, rec, true},
		{rec, utf8, true},
		{utf8, other, true},
		{utf8, reg.At(1), false},
		{reg.At(1), utf8, false},
		{rec, reg.At(2), false},
		{utf8, nil, false},
		{nil, nil, true},
	}
	for i, p := range pairs {
		if got := charsets.Equal(p.a, p.b); got != p.want {
			t.Fatalf("pair %d: Equal(%v, %v) = %v", i, p.a, p.b, got)
		}
	}
	if !utf8.Equal(rec) || !rec.Equal(utf8) {
		t.Fatalf("method Equal must agree with Equal")
	}
}

func TestEqual_NilRecord(t *testing.T) {
	var none *charsets.Record
	rec, _ := charsets.NewRecord(charsets.Entry{Name: "UTF-8"})
	if charsets.Equal(none, rec) || charsets.Equal(rec, none) || none.Equal(rec) {
		t.Fatalf("a nil record must not equal a non-nil one")
	}
	if !charsets.Equal(none, nil) || !charsets.Equal(nil, none) {
		t.Fatalf("a nil record must equal nil")
	}
	if none.Name() != "" || none.Bytes() != nil || charsets.Label(none) != "" || none.Aliases() != nil {
		t.Fatalf("nil record accessors should return zero values")
	}
	if _, ok := none.PreferredMIMEName(); ok {
		t.Fatalf("nil record has no MIME name")
	}
}

func TestCharset_Accessors(t *testing.T) {
	reg := mustUnicode(t)
	cs, _ := reg.Parse("utf32")
	if cs.Registry() != reg || cs.Record() == nil || cs.IsZero() {
		t.Fatalf("charset should be bound to its registry")
	}
	if m, ok := cs.PreferredMIMEName(); !ok || m != "UTF-32" || cs.Label() != "UTF-32" {
		t.Fatalf("mime = %q %v", m, ok)
	}
	if got := cs.MatchKeys(); !slices.Equal(got, []string{"UTF-32", "UTF32", "UTF_32"}) {
		t.Fatalf("match keys = %v", got)
	}
	text, err := cs.MarshalText()
	if err != nil || string(text) != "UTF-32" {
		t.Fatalf("marshal text = %q %v", text, err)
	}
	if fmt.Sprintf("%v|%s", cs, cs) != "UTF-32|UTF-32" {
		t.Fatalf("formatting should render the canonical name")
	}
}

func TestCharset_Zero(t *testing.T) {
	var cs charsets.Charset
	if !cs.IsZero() || cs.Name() != "" || cs.Record() != nil || cs.Index() != -1 {
		t.Fatalf("zero charset should be empty")
	}
	if cs.Aliases() != nil || cs.MatchKeys() != nil || len(cs.Bytes()) != 0 {
		t.Fatalf("zero charset should have no spellings")
	}
	if _, ok := cs.PreferredMIMEName(); ok {
		t.Fatalf("zero charset has no MIME name")
	}
}

func TestInvalidNameError_Message(t *testing.T) {
	reg := charsets.MustNewRegistry([]charsets.Entry{{Name: "UTF-8", Aliases: []string{"UTF8"}}})
	_, err := reg.Parse("utf-9")
	want := `charsets: required ["UTF-8" "UTF8"] but "utf-9" found`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
	e, _ := charsets.AsInvalidName(fmt.Errorf("wrapped: %w", err))
	if e == nil {
		t.Fatalf("AsInvalidName should see through wrapping")
	}
	it := e.Issue()
	if it.Code != charsets.CodeInvalidName || it.Params["found"] != "utf-9" || it.Message != want {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if _, ok := charsets.AsInvalidName(nil); ok {
		t.Fatalf("nil error is not an InvalidNameError")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := charsets.Issues{
		{Path: "/0/name", Code: charsets.CodeRequired},
		{Path: "/1", Code: charsets.CodeDuplicateKey},
		{Path: "/2", Code: charsets.CodeDuplicateKey},
		{Path: "/3", Code: charsets.CodeDuplicateKey},
	}
	want := "required at /0/name; duplicate_key at /1; duplicate_key at /2; ... (total 4)"
	if iss.Error() != want {
		t.Fatalf("got %q", iss.Error())
	}
	if (charsets.Issues{}).Error() != "" {
		t.Fatalf("empty issues render empty")
	}
	if got := charsets.AppendIssues(nil, charsets.Issue{Code: "x"}); len(got) != 1 {
		t.Fatalf("append = %v", got)
	}
	if _, ok := charsets.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}
