package i18n

import (
	"strings"
	"sync/atomic"
)

// Message codes shared with the charsets package.
const (
	CodeInvalidName  = "invalid_name"
	CodeDuplicateKey = "duplicate_key"
	CodeRequired     = "required"
	CodeTooSmall     = "too_small"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "required", "found" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Placeholders
// are written as {name} and filled from data.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		CodeInvalidName:  "charsets: required {required} but {found} found",
		CodeDuplicateKey: "match key {key} is already claimed by {first}",
		CodeRequired:     "{field} must not be empty",
		CodeTooSmall:     "table has no entries",
	},
	"ja": {
		CodeInvalidName:  "charsets: {required} のいずれかが必要ですが {found} が指定されました",
		CodeDuplicateKey: "照合キー {key} は既に {first} で使用されています",
		CodeRequired:     "{field} は空にできません",
		CodeTooSmall:     "テーブルにエントリがありません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
