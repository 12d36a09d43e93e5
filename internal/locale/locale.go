// Package locale implements trilingual (en/ru/uz) content fields.
//
// A localizable column holds either a legacy plain string or a JSON object
// keyed by language code. Both shapes are decoded once, at the storage
// boundary, into a tagged variant (Text or StringList); everything above the
// models layer works with the decoded value and never re-checks the shape.
package locale

import (
	"strings"
)

// Lang is a supported content language code.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangUZ Lang = "uz"
)

// DefaultLang is the content-authoring default.
const DefaultLang = LangEN

// Langs lists all supported languages in canonical order.
var Langs = []Lang{LangEN, LangRU, LangUZ}

// fallbackTail is consulted, in order, after the requested language.
// English first as the authoring default, then uz, then ru. The order is
// fixed so resolution is deterministic for incomplete maps.
var fallbackTail = []Lang{LangEN, LangUZ, LangRU}

// Normalize maps an arbitrary language tag to a supported Lang.
// Unknown or empty tags resolve to the default language.
func Normalize(tag string) Lang {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(tag, "-_;,"); idx > 0 {
		tag = tag[:idx]
	}
	switch Lang(tag) {
	case LangEN, LangRU, LangUZ:
		return Lang(tag)
	}
	return DefaultLang
}

// IsSupported reports whether tag is exactly one of the supported codes.
func IsSupported(tag string) bool {
	switch Lang(tag) {
	case LangEN, LangRU, LangUZ:
		return true
	}
	return false
}

// fallbackChain returns the resolution order for a requested language.
func fallbackChain(lang Lang) []Lang {
	chain := make([]Lang, 0, len(fallbackTail)+1)
	chain = append(chain, lang)
	for _, l := range fallbackTail {
		if l != lang {
			chain = append(chain, l)
		}
	}
	return chain
}
