package locale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Text is a localizable string column: either a legacy plain string or a
// per-language map. The zero value is empty and resolves to "".
type Text struct {
	plain     string
	localized map[Lang]string
	// kind discriminates the variant; the zero kind is the empty value.
	kind fieldKind
}

type fieldKind uint8

const (
	kindEmpty fieldKind = iota
	kindPlain
	kindLocalized
)

// PlainText creates a Text holding a single un-localized string.
func PlainText(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{plain: s, kind: kindPlain}
}

// LocalizedText creates a Text from a per-language map. Missing languages
// are filled with empty strings so the persisted object always carries
// exactly the en/ru/uz keys.
func LocalizedText(m map[Lang]string) Text {
	norm := make(map[Lang]string, len(Langs))
	for _, l := range Langs {
		norm[l] = m[l]
	}
	return Text{localized: norm, kind: kindLocalized}
}

// IsZero reports whether the value is empty.
func (t Text) IsZero() bool {
	return t.kind == kindEmpty
}

// IsLocalized reports whether the value is a per-language map.
func (t Text) IsLocalized() bool {
	return t.kind == kindLocalized
}

// Resolve returns the best available string for the requested language:
// the plain value unchanged, else the map value at lang, else en, uz, ru in
// that order, else "". Empty map entries are skipped so incomplete content
// falls through rather than rendering a blank field.
func (t Text) Resolve(lang Lang) string {
	switch t.kind {
	case kindPlain:
		return t.plain
	case kindLocalized:
		for _, l := range fallbackChain(lang) {
			if v := t.localized[l]; v != "" {
				return v
			}
		}
	}
	return ""
}

// Map returns a copy of the per-language map, synthesizing one from the
// plain value when needed. Used by the admin surface for editing.
func (t Text) Map() map[Lang]string {
	m := make(map[Lang]string, len(Langs))
	for _, l := range Langs {
		m[l] = ""
	}
	switch t.kind {
	case kindPlain:
		m[DefaultLang] = t.plain
	case kindLocalized:
		for _, l := range Langs {
			m[l] = t.localized[l]
		}
	}
	return m
}

// MarshalJSON preserves the stored shape: plain values serialize as JSON
// strings, localized values as objects, empty values as "".
func (t Text) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case kindPlain:
		return json.Marshal(t.plain)
	case kindLocalized:
		return json.Marshal(t.localized)
	}
	return []byte(`""`), nil
}

// UnmarshalJSON accepts null, a bare string or an {en,ru,uz} object.
func (t *Text) UnmarshalJSON(data []byte) error {
	return t.decode(data)
}

// Scan implements sql.Scanner. Columns may contain JSON or, for legacy
// rows, a bare string that is not valid JSON.
func (t *Text) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = Text{}
		return nil
	case []byte:
		return t.decodeStored(v)
	case string:
		return t.decodeStored([]byte(v))
	default:
		return fmt.Errorf("locale: cannot scan %T into Text", value)
	}
}

// Value implements driver.Valuer, persisting the JSON encoding.
func (t Text) Value() (driver.Value, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// GormDataType implements the gorm migrator hint.
func (Text) GormDataType() string {
	return "text"
}

// GormDBDataType selects the column type per dialect.
func (Text) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	}
	return "TEXT"
}

func (t *Text) decodeStored(data []byte) error {
	if len(data) == 0 {
		*t = Text{}
		return nil
	}
	if !gjson.ValidBytes(data) {
		// Legacy row stored as a raw string, not JSON.
		*t = PlainText(string(data))
		return nil
	}
	return t.decode(data)
}

func (t *Text) decode(data []byte) error {
	parsed := gjson.ParseBytes(data)
	switch parsed.Type {
	case gjson.Null:
		*t = Text{}
		return nil
	case gjson.String:
		*t = PlainText(parsed.String())
		return nil
	case gjson.JSON:
		if !parsed.IsObject() {
			return fmt.Errorf("locale: unexpected JSON shape for Text: %s", parsed.Type)
		}
		m := make(map[Lang]string, len(Langs))
		parsed.ForEach(func(key, value gjson.Result) bool {
			if IsSupported(key.String()) {
				m[Lang(key.String())] = value.String()
			}
			return true
		})
		*t = LocalizedText(m)
		return nil
	}
	return fmt.Errorf("locale: unexpected JSON shape for Text: %s", parsed.Type)
}
