package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"zeta": 1, "alpha": {"b": true, "a": null}, "mid": [1, "x"]}`))
	require.NoError(t, err)

	assert.Equal(t, KindObject, v.Kind())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Object().Keys())

	alpha, ok := v.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, alpha.Object().Keys())

	num, ok := v.Get("zeta")
	require.True(t, ok)
	lit, ok := num.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, "1", lit)
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "   ", wantErr: "document is empty"},
		{name: "truncated", input: `{"a": `, wantErr: "invalid JSON document"},
		{name: "trailing data", input: `{} {}`, wantErr: "unexpected data after the top-level value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDuplicateKeyKeepsFirstPosition(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Object().Keys())
	a, _ := v.Get("a")
	assert.Equal(t, "3", a.Text())
}

func TestMarshalJSONRoundTripsOrder(t *testing.T) {
	in := `{"status":"completed","totalFiles":12,"nested":{"y":[1,2.5,null],"x":"q\"uote"},"ok":false}`
	v, err := ParseJSON([]byte(in))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"null", Null(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"empty string", String(""), false},
		{"string", String("x"), true},
		{"zero", Number("0"), false},
		{"negative zero float", Number("-0.0"), false},
		{"number", Number("42"), true},
		{"empty list", List(), true},
		{"empty object", NewObject().Value(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Truthy())
		})
	}
}

func TestText(t *testing.T) {
	obj := NewObject().Set("k", String("v")).Set("n", Int(3))

	assert.Equal(t, "null", Null().Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "4.50", Number("4.50").Text())
	assert.Equal(t, "plain", String("plain").Text())
	assert.Equal(t, `[1,"a"]`, List(Int(1), String("a")).Text())
	assert.Equal(t, `{"k":"v","n":3}`, obj.Value().Text())
}

func TestAccessorsOnWrongKind(t *testing.T) {
	s := String("x")

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Nil(t, s.Items())
	assert.Nil(t, s.Object())
	assert.Nil(t, s.Entries())
	_, ok = s.GetList("a")
	assert.False(t, ok)
	_, ok = s.AsNumber()
	assert.False(t, ok)
}

func TestParseYAML(t *testing.T) {
	src := strings.Join([]string{
		"status: completed",
		"totalFilesAnalyzed: 12",
		"ratio: 0.5",
		"enabled: yes",
		"missing: ~",
		"defaults: &d",
		"  severity: HIGH",
		"findings:",
		"  - type: NullDeref",
		"    extra: *d",
	}, "\n")

	v, err := ParseYAML([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"status", "totalFilesAnalyzed", "ratio", "enabled", "missing", "defaults", "findings"}, v.Object().Keys())

	total, _ := v.Get("totalFilesAnalyzed")
	assert.Equal(t, KindNumber, total.Kind())
	assert.Equal(t, "12", total.Text())

	ratio, _ := v.Get("ratio")
	assert.Equal(t, "0.5", ratio.Text())

	missing, _ := v.Get("missing")
	assert.True(t, missing.IsNull())

	findings, ok := v.GetList("findings")
	require.True(t, ok)
	require.Len(t, findings, 1)
	extra, _ := findings[0].Get("extra")
	sev, _ := extra.Get("severity")
	assert.Equal(t, "HIGH", sev.Text())
}

func TestParseYAMLAcceptsJSON(t *testing.T) {
	v, err := ParseYAML([]byte(`{"b": 1, "a": [true, "x"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, v.Object().Keys())
}

func TestFromAnySortsMapKeys(t *testing.T) {
	v := FromAny(map[string]interface{}{
		"b": 1.5,
		"a": []interface{}{"x", nil, true},
	})

	assert.Equal(t, []string{"a", "b"}, v.Object().Keys())
	assert.Equal(t, `{"a":["x",null,true],"b":1.5}`, v.Text())
}
