package charsets

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/reoring/charsets/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidName  = i18n.CodeInvalidName  // input matched no name or alias
	CodeDuplicateKey = i18n.CodeDuplicateKey // match key claimed by two entries
	CodeRequired     = i18n.CodeRequired     // empty name or alias
	CodeTooSmall     = i18n.CodeTooSmall     // empty table
)

// Issue represents a single table or resolution problem.
type Issue struct {
	Path    string // JSON Pointer into the table (for example: /12/aliases/3).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"key":"UTF8","first":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_key at /4: ...
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// InvalidNameError reports a string that matched no known spelling.
type InvalidNameError struct {
	// Required lists the upper-cased spellings the input was compared with.
	Required []string
	// Found is the input exactly as the caller supplied it.
	Found string
}

func newInvalidName(required []string, found string) *InvalidNameError {
	return &InvalidNameError{Required: slices.Clone(required), Found: found}
}

func (e *InvalidNameError) Error() string {
	return i18n.T(CodeInvalidName, map[string]string{
		"required": fmt.Sprintf("%q", e.Required),
		"found":    fmt.Sprintf("%q", e.Found),
	})
}

// Issue converts e into the shared Issue model.
func (e *InvalidNameError) Issue() Issue {
	return Issue{
		Path:    "/",
		Code:    CodeInvalidName,
		Message: e.Error(),
		Params:  map[string]any{"required": e.Required, "found": e.Found},
	}
}

// AsInvalidName extracts an *InvalidNameError using errors.As internally.
func AsInvalidName(err error) (*InvalidNameError, bool) {
	var e *InvalidNameError
	if err != nil && errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
