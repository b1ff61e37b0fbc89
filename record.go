package charsets

import "slices"

// Record is one immutable character-set definition.
type Record struct {
	name    string
	mime    string
	aliases []string
	keys    []string // upper-cased name first, then aliases, without repeats
}

func newRecord(e Entry) *Record {
	r := &Record{
		name:    e.Name,
		mime:    e.MIME,
		aliases: slices.Clone(e.Aliases),
	}
	r.keys = make([]string, 0, len(e.Aliases)+1)
	r.keys = append(r.keys, upperASCII(e.Name))
	for _, a := range e.Aliases {
		k := upperASCII(a)
		if !slices.Contains(r.keys, k) {
			r.keys = append(r.keys, k)
		}
	}
	return r
}

// NewRecord builds a standalone record. It fails when the entry has no name.
func NewRecord(e Entry) (*Record, error) {
	if iss := checkEntry("", e); len(iss) > 0 {
		return nil, iss
	}
	return newRecord(e), nil
}

// Name returns the canonical name. A nil *Record has the empty name.
func (r *Record) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

func (r *Record) PreferredMIMEName() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.mime, r.mime != ""
}

// Aliases returns a copy of the alias list in declaration order.
func (r *Record) Aliases() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.aliases)
}

// MatchKeys returns the upper-cased spellings this record answers to.
func (r *Record) MatchKeys() []string { return slices.Clone(r.keys) }

// Matches reports whether s is a case-insensitive spelling of r.
func (r *Record) Matches(s string) bool {
	return slices.Contains(r.keys, upperASCII(s))
}

// Parse resolves s against this record only. On failure the error lists this
// record's match keys.
func (r *Record) Parse(s string) (*Record, error) {
	if r.Matches(s) {
		return r, nil
	}
	return nil, newInvalidName(r.keys, s)
}

func (r *Record) String() string { return r.Name() }

// Bytes returns the canonical name as UTF-8 bytes.
func (r *Record) Bytes() []byte { return Bytes(r) }

// Equal reports whether other has the same canonical name.
func (r *Record) Equal(other CharacterSet) bool { return Equal(r, other) }

// upperASCII upper-cases ASCII letters only; every other byte is kept.
func upperASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'a' <= c && c <= 'z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
