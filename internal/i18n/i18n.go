package i18n

import "strings"

// Language identifies one of the supported display languages.
type Language string

// Supported languages. The zero value means the language has not been
// resolved yet.
const (
	Portuguese Language = "pt"
	English    Language = "en"
	Spanish    Language = "es"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Portuguese, English, Spanish}

// IsSupported reports whether lang has a translation table.
func IsSupported(lang Language) bool {
	_, ok := tables[lang]
	return ok
}

// Detect maps a platform locale string (for example "pt-BR", "es_ES.UTF-8"
// or "en-US") to a supported language: a "pt" prefix selects Portuguese, an
// "es" prefix selects Spanish and anything else falls back to English.
func Detect(locale string) Language {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "pt"):
		return Portuguese
	case strings.HasPrefix(l, "es"):
		return Spanish
	default:
		return English
	}
}

// Translator resolves display keys for a single language.
type Translator struct {
	lang Language
}

// New returns a Translator for lang. Unsupported languages are accepted and
// simply resolve every key to itself.
func New(lang Language) Translator {
	return Translator{lang: lang}
}

// Language returns the language the translator resolves keys for.
func (t Translator) Language() Language {
	return t.lang
}

// T returns the translation of key, or key itself when the key is unknown.
func (t Translator) T(key string) string {
	if table, ok := tables[t.lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	return key
}
