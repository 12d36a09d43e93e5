package locale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a localizable list column: either a flat list of strings or
// a per-language map of lists. The zero value resolves to an empty list.
type StringList struct {
	plain     []string
	localized map[Lang][]string
	kind      fieldKind
}

// PlainList creates a StringList holding a single un-localized list.
func PlainList(items []string) StringList {
	if len(items) == 0 {
		return StringList{}
	}
	return StringList{plain: items, kind: kindPlain}
}

// LocalizedList creates a StringList from a per-language map, filling
// missing languages with empty lists.
func LocalizedList(m map[Lang][]string) StringList {
	norm := make(map[Lang][]string, len(Langs))
	for _, l := range Langs {
		if items := m[l]; items != nil {
			norm[l] = items
		} else {
			norm[l] = []string{}
		}
	}
	return StringList{localized: norm, kind: kindLocalized}
}

// IsZero reports whether the value is empty.
func (s StringList) IsZero() bool {
	return s.kind == kindEmpty
}

// IsLocalized reports whether the value is a per-language map.
func (s StringList) IsLocalized() bool {
	return s.kind == kindLocalized
}

// Resolve returns the best available list for the requested language using
// the same fallback order as Text. The result is never nil.
func (s StringList) Resolve(lang Lang) []string {
	switch s.kind {
	case kindPlain:
		return s.plain
	case kindLocalized:
		for _, l := range fallbackChain(lang) {
			if items := s.localized[l]; len(items) > 0 {
				return items
			}
		}
	}
	return []string{}
}

// Map returns a copy of the per-language map, synthesizing one from the
// plain value when needed.
func (s StringList) Map() map[Lang][]string {
	m := make(map[Lang][]string, len(Langs))
	for _, l := range Langs {
		m[l] = []string{}
	}
	switch s.kind {
	case kindPlain:
		m[DefaultLang] = s.plain
	case kindLocalized:
		for _, l := range Langs {
			m[l] = append([]string{}, s.localized[l]...)
		}
	}
	return m
}

// MarshalJSON preserves the stored shape.
func (s StringList) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case kindPlain:
		return json.Marshal(s.plain)
	case kindLocalized:
		return json.Marshal(s.localized)
	}
	return []byte(`[]`), nil
}

// UnmarshalJSON accepts null, a flat array or an {en,ru,uz} object of arrays.
func (s *StringList) UnmarshalJSON(data []byte) error {
	return s.decode(data)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		return s.decode(v)
	case string:
		return s.decode([]byte(v))
	default:
		return fmt.Errorf("locale: cannot scan %T into StringList", value)
	}
}

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// GormDataType implements the gorm migrator hint.
func (StringList) GormDataType() string {
	return "text"
}

// GormDBDataType selects the column type per dialect.
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	}
	return "TEXT"
}

func (s *StringList) decode(data []byte) error {
	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	parsed := gjson.ParseBytes(data)
	switch {
	case parsed.Type == gjson.Null:
		*s = StringList{}
		return nil
	case parsed.IsArray():
		*s = PlainList(resultToStrings(parsed))
		return nil
	case parsed.IsObject():
		m := make(map[Lang][]string, len(Langs))
		parsed.ForEach(func(key, value gjson.Result) bool {
			if IsSupported(key.String()) && value.IsArray() {
				m[Lang(key.String())] = resultToStrings(value)
			}
			return true
		})
		*s = LocalizedList(m)
		return nil
	}
	return fmt.Errorf("locale: unexpected JSON shape for StringList: %s", parsed.Type)
}

func resultToStrings(r gjson.Result) []string {
	arr := r.Array()
	items := make([]string, 0, len(arr))
	for _, item := range arr {
		items = append(items, item.String())
	}
	return items
}
