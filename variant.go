package charsets

// Charset is one member of a Registry, as returned by Registry.Parse. The zero
// Charset belongs to no registry and has an empty name.
type Charset struct {
	reg *Registry
	idx int // 1-based so that the zero value is distinguishable
}

// IsZero reports whether c is the zero Charset.
func (c Charset) IsZero() bool { return c.reg == nil }

// Registry returns the registry c belongs to, or nil for the zero Charset.
func (c Charset) Registry() *Registry { return c.reg }

// Index returns the declaration position of c in its registry, or -1.
func (c Charset) Index() int { return c.idx - 1 }

// Record returns the underlying record, or nil for the zero Charset.
func (c Charset) Record() *Record {
	if c.reg == nil {
		return nil
	}
	return c.reg.records[c.idx-1]
}

func (c Charset) Name() string {
	if r := c.Record(); r != nil {
		return r.name
	}
	return ""
}

func (c Charset) PreferredMIMEName() (string, bool) {
	if r := c.Record(); r != nil {
		return r.PreferredMIMEName()
	}
	return "", false
}

func (c Charset) Aliases() []string {
	if r := c.Record(); r != nil {
		return r.Aliases()
	}
	return nil
}

// MatchKeys returns the upper-cased spellings c answers to.
func (c Charset) MatchKeys() []string {
	if r := c.Record(); r != nil {
		return r.MatchKeys()
	}
	return nil
}

// Label returns the preferred MIME name, or the canonical name when none is
// registered.
func (c Charset) Label() string { return Label(c) }

// Equal reports whether other has the same canonical name.
func (c Charset) Equal(other CharacterSet) bool { return Equal(c, other) }

// String returns the canonical name.
func (c Charset) String() string { return c.Name() }

// Bytes returns the canonical name as UTF-8 bytes.
func (c Charset) Bytes() []byte { return []byte(c.Name()) }

// MarshalText implements encoding.TextMarshaler.
func (c Charset) MarshalText() ([]byte, error) { return c.Bytes(), nil }
