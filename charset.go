package charsets

// CharacterSet is implemented by every value that names a character set:
// *Record, Charset and the generated enumerations such as iana.ID.
type CharacterSet interface {
	// Name returns the canonical display name.
	Name() string
	// PreferredMIMEName returns the label preferred for interchange, if one is
	// registered.
	PreferredMIMEName() (string, bool)
	// Aliases returns every alternate spelling in display case.
	Aliases() []string
}

// Equal reports whether a and b name the same character set. Values of
// different concrete types are equal when their canonical names are equal.
// Two nil values are equal; a nil value never equals a non-nil one. A nil
// *Record counts as nil.
func Equal(a, b CharacterSet) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.Name() == b.Name()
}

// Bytes returns the canonical name of cs as UTF-8 bytes.
func Bytes(cs CharacterSet) []byte {
	if isNil(cs) {
		return nil
	}
	return []byte(cs.Name())
}

// Label returns the preferred MIME name of cs, falling back to its canonical
// name.
func Label(cs CharacterSet) string {
	if isNil(cs) {
		return ""
	}
	if m, ok := cs.PreferredMIMEName(); ok {
		return m
	}
	return cs.Name()
}

func isNil(cs CharacterSet) bool {
	if cs == nil {
		return true
	}
	r, ok := cs.(*Record)
	return ok && r == nil
}

// Entry is one row of a character-set table.
type Entry struct {
	// ID is an optional Go identifier used by code generation.
	ID string `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	// Name is the canonical display name.
	Name string `yaml:"name" json:"name" toml:"name"`
	// MIME is the preferred MIME name; empty when none is registered.
	MIME string `yaml:"mime,omitempty" json:"mime,omitempty" toml:"mime,omitempty"`
	// Aliases lists alternate spellings in display case. Listing the
	// canonical name again is allowed.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty" toml:"aliases,omitempty"`
}
