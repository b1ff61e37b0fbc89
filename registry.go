package charsets

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/reoring/charsets/i18n"
)

// Registry is a closed, immutable set of records. It is safe for concurrent
// use; nothing is mutated after NewRegistry returns.
type Registry struct {
	records []*Record
	index   map[string]int // match key -> record index
	keys    []string       // all match keys in declaration order
}

// NewRegistry builds a registry from table rows, in order. It reports every
// problem it finds as Issues: an empty table, entries without a name, empty
// aliases, and match keys claimed by more than one entry.
func NewRegistry(entries []Entry) (*Registry, error) {
	var iss Issues
	if len(entries) == 0 {
		iss = AppendIssues(iss, Issue{
			Path:    "/",
			Code:    CodeTooSmall,
			Message: i18n.T(CodeTooSmall, nil),
		})
		return nil, iss
	}

	r := &Registry{
		records: make([]*Record, 0, len(entries)),
		index:   make(map[string]int, len(entries)*4),
	}
	owner := make(map[string]int, len(entries)*4) // match key -> first entry claiming it
	for i, e := range entries {
		path := "/" + strconv.Itoa(i)
		bad := checkEntry(path, e)
		if len(bad) > 0 {
			iss = AppendIssues(iss, bad...)
		}
		rec := newRecord(e)
		for _, k := range rec.keys {
			if k == "" {
				continue
			}
			if j, dup := owner[k]; dup {
				iss = AppendIssues(iss, Issue{
					Path:    path,
					Code:    CodeDuplicateKey,
					Message: i18n.T(CodeDuplicateKey, map[string]string{"key": k, "first": entries[j].Name}),
					Params:  map[string]any{"key": k, "first": j},
				})
				continue
			}
			owner[k] = i
			if len(bad) == 0 {
				r.index[k] = len(r.records)
				r.keys = append(r.keys, k)
			}
		}
		if len(bad) == 0 {
			r.records = append(r.records, rec)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error. It is meant for
// package-level tables.
func MustNewRegistry(entries []Entry) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(fmt.Sprintf("charsets: invalid table: %v", err))
	}
	return r
}

func checkEntry(path string, e Entry) Issues {
	var iss Issues
	if e.Name == "" {
		iss = AppendIssues(iss, Issue{
			Path:    path + "/name",
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"field": "name"}),
		})
	}
	for j, a := range e.Aliases {
		if a == "" {
			iss = AppendIssues(iss, Issue{
				Path:    path + "/aliases/" + strconv.Itoa(j),
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"field": "alias"}),
			})
		}
	}
	return iss
}

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.records) }

// At returns the i-th record as a Charset. It panics if i is out of range.
func (r *Registry) At(i int) Charset {
	_ = r.records[i]
	return Charset{reg: r, idx: i + 1}
}

// All iterates over the records in declaration order.
func (r *Registry) All() iter.Seq2[int, Charset] {
	return func(yield func(int, Charset) bool) {
		for i := range r.records {
			if !yield(i, r.At(i)) {
				return
			}
		}
	}
}

// Charsets returns every record as a Charset, in declaration order.
func (r *Registry) Charsets() []Charset {
	out := make([]Charset, len(r.records))
	for i := range r.records {
		out[i] = r.At(i)
	}
	return out
}

// MatchKeys returns every match key of the registry in declaration order.
func (r *Registry) MatchKeys() []string { return slices.Clone(r.keys) }

// Lookup resolves s without building an error on failure.
func (r *Registry) Lookup(s string) (Charset, bool) {
	i, ok := r.index[upperASCII(s)]
	if !ok {
		return Charset{}, false
	}
	return r.At(i), true
}

// Parse resolves s case-insensitively against every name and alias in the
// registry. When nothing matches, the returned *InvalidNameError lists all
// match keys of the registry and carries s unchanged.
func (r *Registry) Parse(s string) (Charset, error) {
	if cs, ok := r.Lookup(s); ok {
		return cs, nil
	}
	return Charset{}, newInvalidName(r.keys, s)
}
