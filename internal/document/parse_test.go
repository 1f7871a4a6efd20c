package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONPreservesKeyOrder(t *testing.T) {
	v, err := ParseJSON(strings.NewReader(`{"zebra": 1, "apple": 2, "mango": 3}`))
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind)

	keys := make([]string, 0, len(v.Pairs))
	for _, p := range v.Pairs {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestParseJSONKeepsNumberLexical(t *testing.T) {
	v, err := ParseJSON(strings.NewReader(`[1.50, 1e3, -0.25, 42]`))
	require.NoError(t, err)
	require.Equal(t, KindSequence, v.Kind)
	require.Len(t, v.Items, 4)

	assert.Equal(t, "1.50", v.Items[0].Number)
	assert.Equal(t, "1e3", v.Items[1].Number)
	assert.Equal(t, "-0.25", v.Items[2].Number)
	assert.Equal(t, "42", v.Items[3].Number)
}

func TestParseJSONScalars(t *testing.T) {
	v, err := ParseJSON(strings.NewReader(`{"s": "hi", "t": true, "f": false, "n": null}`))
	require.NoError(t, err)
	require.Len(t, v.Pairs, 4)

	assert.Equal(t, KindString, v.Pairs[0].Value.Kind)
	assert.Equal(t, "hi", v.Pairs[0].Value.Str)
	assert.Equal(t, KindBool, v.Pairs[1].Value.Kind)
	assert.True(t, v.Pairs[1].Value.Bool)
	assert.Equal(t, KindBool, v.Pairs[2].Value.Kind)
	assert.False(t, v.Pairs[2].Value.Bool)
	assert.Equal(t, KindNull, v.Pairs[3].Value.Kind)
}

func TestParseJSONNested(t *testing.T) {
	v, err := ParseJSON(strings.NewReader(`{"a": [1, {"b": []}]}`))
	require.NoError(t, err)

	seq := v.Pairs[0].Value
	require.Equal(t, KindSequence, seq.Kind)
	require.Len(t, seq.Items, 2)

	inner := seq.Items[1]
	require.Equal(t, KindMapping, inner.Kind)
	require.Equal(t, KindSequence, inner.Pairs[0].Value.Kind)
	assert.Empty(t, inner.Pairs[0].Value.Items)
}

func TestParseJSONErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unterminated", `{"a": `},
		{"trailing content", `{} {}`},
		{"bare word", `nope`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	v, err := ParseYAML([]byte("zebra: 1\napple:\n  - x\n  - true\nmango: null\n"))
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind)
	require.Len(t, v.Pairs, 3)

	assert.Equal(t, "zebra", v.Pairs[0].Key)
	assert.Equal(t, "1", v.Pairs[0].Value.Number)

	seq := v.Pairs[1].Value
	require.Equal(t, KindSequence, seq.Kind)
	assert.Equal(t, "x", seq.Items[0].Str)
	assert.Equal(t, KindBool, seq.Items[1].Kind)

	assert.Equal(t, KindNull, v.Pairs[2].Value.Kind)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("data.json"))
	assert.Equal(t, FormatYAML, DetectFormat("data.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("data.yml"))
	assert.Equal(t, FormatJSON, DetectFormat("data"))
}

func TestLoadStdinFallsBackToYAML(t *testing.T) {
	// Not valid JSON, but valid YAML; with no path the loader retries.
	v, err := Load([]byte("a: 1\nb: 2\n"), "")
	require.NoError(t, err)
	assert.Equal(t, KindMapping, v.Kind)
}

func TestLoadHonorsExtension(t *testing.T) {
	_, err := Load([]byte("a: 1\n"), "data.json")
	assert.Error(t, err, "a .json path should not fall back to YAML")

	v, err := Load([]byte(`{"a": 1}`), "data.json")
	require.NoError(t, err)
	assert.Equal(t, KindMapping, v.Kind)
}

func TestEqual(t *testing.T) {
	a, err := ParseJSON(strings.NewReader(`{"a": [1, "x", null], "b": true}`))
	require.NoError(t, err)
	b, err := ParseJSON(strings.NewReader(`{"a": [1, "x", null], "b": true}`))
	require.NoError(t, err)
	c, err := ParseJSON(strings.NewReader(`{"b": true, "a": [1, "x", null]}`))
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c), "key order is part of the document")
}
