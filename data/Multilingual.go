package data

// DefaultKey is the synthetic language key carrying the fallback rendering
// of a multilingual value.
const DefaultKey = "_default"

// Languages lists the supported language codes in fallback priority order.
// Adding a code here extends every multilingual field in the catalog.
var Languages = []string{"de", "en"}

// MultilingualText maps language codes to text, plus the computed "_default"
// entry. Values are immutable after construction; the zero value is usable.
type MultilingualText map[string]string

// NewMultilingualText builds an empty value with an empty default.
func NewMultilingualText() MultilingualText {
	return MultilingualText{DefaultKey: ""}
}

// NewMultilingualString wraps a plain string so that every supported
// language carries the same value.
func NewMultilingualString(s string) MultilingualText {
	m := MultilingualText{DefaultKey: s}
	for _, lang := range Languages {
		m[lang] = s
	}
	return m
}

// Default returns the fallback rendering, never a missing-key zero surprise.
func (m MultilingualText) Default() string {
	if m == nil {
		return ""
	}
	return m[DefaultKey]
}

// Get returns the text for a language code, empty when absent.
func (m MultilingualText) Get(lang string) string {
	if m == nil {
		return ""
	}
	return m[lang]
}

// IsEmpty reports whether no language carries any text.
func (m MultilingualText) IsEmpty() bool {
	for _, v := range m {
		if v != "" {
			return false
		}
	}
	return true
}

// Finalize applies the cross-fill rules: every supported language missing a
// value takes the first present one, and the default falls back through the
// language priority order. Returns the receiver for chaining.
func (m MultilingualText) Finalize() MultilingualText {
	var first string
	for _, lang := range Languages {
		if m[lang] != "" {
			first = m[lang]
			break
		}
	}

	if first != "" {
		for _, lang := range Languages {
			if m[lang] == "" {
				m[lang] = first
			}
		}
	}

	if m[DefaultKey] == "" {
		m[DefaultKey] = first
	}

	return m
}
