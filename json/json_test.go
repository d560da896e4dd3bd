package json

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tef/parsec"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want any
	}{
		{`null`, nil},
		{`true`, true},
		{`false`, false},
		{`0`, 0.0},
		{`-12.5e1`, -125.0},
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"esc\nape"`, `esc\nape`},
		{`[]`, []any{}},
		{`[1, 2, 3]`, []any{1.0, 2.0, 3.0}},
		{`{}`, map[string]any{}},
		{
			`{"a": 1, "b": [true, null]}`,
			map[string]any{"a": 1.0, "b": []any{true, nil}},
		},
		{
			" {\n\t\"nested\": {\"deep\": [[]]}\n} ",
			map[string]any{"nested": map[string]any{"deep": []any{[]any{}}}},
		},
	} {
		got, err := Parse(tt.src)
		require.NoError(t, err, "parse %q", tt.src)
		require.Equal(t, tt.want, got, "parse %q", tt.src)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`[1, 2`,
		`[1,]`,
		`{"a"}`,
		`{"a": }`,
		`"unterminated`,
		`truex`,
		`1 2`,
		`{1: 2}`,
	} {
		_, err := Parse(src)
		require.Error(t, err, "parse %q", src)
		require.True(t, parsec.IsFailure(err), "parse %q: %v", src, err)
	}
}

func TestParseErrorOffset(t *testing.T) {
	// trailing garbage fails at the end-of-input check, past the value
	_, err := Parse(`true 2`)
	require.Error(t, err)

	var f *parsec.Failure
	require.ErrorAs(t, err, &f)
	require.Equal(t, "not at end of string", f.Message)
	require.Equal(t, 5, f.Offset)
}
