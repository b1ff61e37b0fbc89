// Package codec converts between wire labels (as found in protocol headers
// such as Content-Type charset parameters) and registry members.
package codec

import (
	"errors"
	"strings"

	"github.com/reoring/charsets"
)

// Label returns a codec that decodes any spelling known to reg and encodes to
// the preferred MIME name, falling back to the canonical name.
func Label(reg *charsets.Registry) *LabelCodec {
	return &LabelCodec{reg: reg}
}

// Name returns a codec that decodes like Label but always encodes the
// canonical name.
func Name(reg *charsets.Registry) *LabelCodec {
	return &LabelCodec{reg: reg, canonical: true}
}

// LabelCodec is safe for concurrent use.
type LabelCodec struct {
	reg       *charsets.Registry
	canonical bool
}

var errNilCharset = errors.New("codec: nil character set")

// Decode resolves a wire label. Surrounding whitespace and one pair of
// double quotes (MIME parameter quoting) are removed before resolution. If
// the unquoted form is unknown the label is resolved as received, so a
// registered name that itself carries quotes still decodes; the error
// reports the label as received.
func (c *LabelCodec) Decode(label string) (charsets.Charset, error) {
	s := strings.TrimSpace(label)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if cs, ok := c.reg.Lookup(s); ok {
		return cs, nil
	}
	return c.reg.Parse(label)
}

// Encode returns the wire label for cs. cs may be of any CharacterSet kind
// but must name a member of the codec's registry.
func (c *LabelCodec) Encode(cs charsets.CharacterSet) (string, error) {
	if cs == nil {
		return "", errNilCharset
	}
	m, err := c.reg.Parse(cs.Name())
	if err != nil {
		return "", err
	}
	if c.canonical {
		return m.Name(), nil
	}
	return m.Label(), nil
}
