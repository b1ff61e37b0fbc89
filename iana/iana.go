//go:generate go run ../cmd/charsetgen -pkg iana -o tables.go character-sets.yaml

// Package iana is the character-set registry maintained by IANA, exposed as
// the closed enumeration ID.
//
// See https://www.iana.org/assignments/character-sets/character-sets.xhtml
// for the registry itself. Constants are named after the registered MIB
// alias (csASCII -> ASCII, cswindows1252 -> Windows1252).
package iana

import (
	"fmt"
	"strconv"

	"github.com/reoring/charsets"
)

// ID identifies one IANA character set. The zero value is Unknown.
type ID uint16

// Registry holds every IANA record in ID order; ID(i+1) is Registry.At(i).
var Registry = charsets.MustNewRegistry(entries[:])

// Parse resolves s case-insensitively against every IANA name and alias.
// On failure the *charsets.InvalidNameError lists all IANA match keys.
func Parse(s string) (ID, error) {
	cs, err := Registry.Parse(s)
	if err != nil {
		return Unknown, err
	}
	return ID(cs.Index() + 1), nil
}

// Lookup is like Parse but reports failure without an error value.
func Lookup(s string) (ID, bool) {
	cs, ok := Registry.Lookup(s)
	if !ok {
		return Unknown, false
	}
	return ID(cs.Index() + 1), true
}

// MustParse is like Parse but panics on error. Use it for literals.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromCharset maps a Charset to its ID. It succeeds for values taken from
// Registry and for Charsets of other registries whose canonical name is an
// IANA spelling.
func FromCharset(cs charsets.Charset) (ID, bool) {
	if cs.Registry() == Registry {
		return ID(cs.Index() + 1), true
	}
	if cs.IsZero() {
		return Unknown, false
	}
	return Lookup(cs.Name())
}

// Valid reports whether id names a registered character set.
func (id ID) Valid() bool { return id > Unknown && id <= maxID }

// Charset returns id as a member of Registry, or the zero Charset.
func (id ID) Charset() charsets.Charset {
	if !id.Valid() {
		return charsets.Charset{}
	}
	return Registry.At(int(id) - 1)
}

func (id ID) record() *charsets.Record { return id.Charset().Record() }

// Name returns the IANA display name, or "" for an invalid ID.
func (id ID) Name() string {
	if r := id.record(); r != nil {
		return r.Name()
	}
	return ""
}

func (id ID) PreferredMIMEName() (string, bool) {
	if r := id.record(); r != nil {
		return r.PreferredMIMEName()
	}
	return "", false
}

func (id ID) Aliases() []string {
	if r := id.record(); r != nil {
		return r.Aliases()
	}
	return nil
}

// MatchKeys returns the upper-cased spellings id answers to.
func (id ID) MatchKeys() []string {
	if r := id.record(); r != nil {
		return r.MatchKeys()
	}
	return nil
}

// Label returns the preferred MIME name, or the IANA name when none is
// registered.
func (id ID) Label() string { return charsets.Label(id) }

// Parse resolves s against id alone: it returns id when s is one of its
// spellings, and otherwise an error listing only id's match keys.
func (id ID) Parse(s string) (ID, error) {
	if !id.Valid() {
		return Unknown, &charsets.InvalidNameError{Found: s}
	}
	if _, err := id.record().Parse(s); err != nil {
		return Unknown, err
	}
	return id, nil
}

// Equal reports whether other has the same canonical name as id.
func (id ID) Equal(other charsets.CharacterSet) bool { return charsets.Equal(id, other) }

// String returns the IANA name, or "ID(n)" for an invalid ID.
func (id ID) String() string {
	if !id.Valid() {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return id.Name()
}

// Bytes returns the IANA name as UTF-8 bytes.
func (id ID) Bytes() []byte { return []byte(id.Name()) }

// MarshalText implements encoding.TextMarshaler. Unknown marshals to an empty
// string.
func (id ID) MarshalText() ([]byte, error) {
	if id == Unknown {
		return []byte{}, nil
	}
	if !id.Valid() {
		return nil, fmt.Errorf("iana: cannot marshal invalid %s", id)
	}
	return id.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any IANA spelling is
// accepted; empty text yields Unknown.
func (id *ID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = Unknown
		return nil
	}
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
