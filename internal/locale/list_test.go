package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Resolve_Plain(t *testing.T) {
	items := []string{"Build vocabulary", "Practice speaking"}
	v := PlainList(items)

	for _, lang := range Langs {
		assert.Equal(t, items, v.Resolve(lang))
	}
}

func TestStringList_Resolve_Fallback(t *testing.T) {
	v := LocalizedList(map[Lang][]string{
		LangEN: {"Grammar", "Writing"},
		LangUZ: {"Grammatika"},
	})

	assert.Equal(t, []string{"Grammatika"}, v.Resolve(LangUZ))
	assert.Equal(t, []string{"Grammar", "Writing"}, v.Resolve(LangRU))
	assert.Equal(t, []string{"Grammar", "Writing"}, v.Resolve(LangEN))
}

func TestStringList_Resolve_ZeroIsEmptyList(t *testing.T) {
	var v StringList
	got := v.Resolve(LangEN)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		lang     Lang
		expected []string
	}{
		{"flat array", `["a","b"]`, LangRU, []string{"a", "b"}},
		{"object of arrays", `{"en":["one"],"ru":["один"],"uz":["bir"]}`, LangRU, []string{"один"}},
		{"null", `null`, LangEN, []string{}},
		{"partial object", `{"en":["exam prep"]}`, LangUZ, []string{"exam prep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expected, v.Resolve(tt.lang))
		})
	}
}

func TestStringList_ScanValueRoundTrip(t *testing.T) {
	orig := LocalizedList(map[Lang][]string{
		LangEN: {"Reading", "Listening"},
		LangRU: {"Чтение"},
	})

	dv, err := orig.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(dv))
	assert.Equal(t, orig.Map(), decoded.Map())
}

func TestStringList_MarshalJSON_PreservesShape(t *testing.T) {
	plain := PlainList([]string{"x"})
	b, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `["x"]`, string(b))

	var zero StringList
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}
