package keytable_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/keydocs/keytable"
	"go.jacobcolvin.com/keydocs/stringtest"
)

func enumSource(body string) keytable.Source {
	return keytable.NewSource("enums.rs", "pub enum EV_KEY {"+body+"}")
}

func aliasSource(body string) keytable.Source {
	return keytable.NewSource("key_defs.rs", "let mut m = HashMap::new();"+body+"m\n")
}

func newExtractor(t *testing.T, opts ...keytable.Option) *keytable.Extractor {
	t.Helper()

	e, err := keytable.NewExtractor(opts...)
	require.NoError(t, err)

	return e
}

func TestExtractKeys(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src  keytable.Source
		opts []keytable.Option
		want []string
	}{
		"drops single characters and literals": {
			src:  enumSource("KEY_A = 1, KEY_1 = 2, KEY_LEFTSHIFT = 3, KEY_MINUS = 4"),
			want: []string{"leftshift"},
		},
		"keeps source order": {
			src:  enumSource("KEY_UP = 103, KEY_DOWN = 108, KEY_ESC = 1"),
			want: []string{"up", "down", "esc"},
		},
		"entries without value keep their full name": {
			src:  enumSource("KEY_ESC, KEY_TAB"),
			want: []string{"esc", "tab"},
		},
		"multi-line body with trailing comma": {
			src: keytable.NewSource("enums.rs", stringtest.Input(`
				pub enum EV_KEY {
				    KEY_RESERVED = 0,
				    KEY_NUMERIC_POUND = 523,
				}`,
			)),
			want: []string{"reserved", "numeric_pound"},
		},
		"crlf line endings": {
			src: keytable.NewSource("enums.rs", stringtest.JoinCRLF(
				"pub enum EV_KEY {",
				"    KEY_F1 = 59,",
				"    KEY_F2 = 60,",
				"}",
			)),
			want: []string{"f1", "f2"},
		},
		"duplicates propagate": {
			src:  enumSource("KEY_ESC = 1, KEY_ESC = 1"),
			want: []string{"esc", "esc"},
		},
		"entries without prefix are kept by default": {
			src:  enumSource("KEY_ESC = 1, BTN_LEFT = 272"),
			want: []string{"esc", "btn_left"},
		},
		"strict prefix drops entries without prefix": {
			src:  enumSource("KEY_ESC = 1, BTN_LEFT = 272"),
			opts: []keytable.Option{keytable.WithStrictPrefix(true)},
			want: []string{"esc"},
		},
		"custom marker and prefix": {
			src:  keytable.NewSource("buttons.rs", "pub enum EV_BTN { BTN_LEFT = 272, BTN_RIGHT = 273 }"),
			opts: []keytable.Option{keytable.WithEnumMarker("pub enum EV_BTN {"), keytable.WithKeyPrefix("BTN_")},
			want: []string{"left", "right"},
		},
		"empty body": {
			src:  enumSource(""),
			want: nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e := newExtractor(t, tc.opts...)

			got, err := e.ExtractKeys(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractKeysInvariants(t *testing.T) {
	t.Parallel()

	src, err := keytable.ReadSource(filepath.Join("testdata", "enums.rs"))
	require.NoError(t, err)

	e := newExtractor(t)

	first, err := e.ExtractKeys(src)
	require.NoError(t, err)

	second, err := e.ExtractKeys(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	for _, key := range first {
		assert.Greater(t, len([]rune(key)), 1, key)
		assert.False(t, keytable.IsLiteral(key), key)
	}
}

func TestExtractKeysMarkerNotFound(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src     keytable.Source
		wantMsg string
	}{
		"missing opening marker": {
			src:     keytable.NewSource("enums.rs", "pub enum EV_REL { REL_X = 0 }"),
			wantMsg: `opening marker "pub enum EV_KEY {" in enums.rs`,
		},
		"missing closing brace": {
			src:     keytable.NewSource("enums.rs", "pub enum EV_KEY { KEY_ESC = 1,"),
			wantMsg: `closing marker "}" in enums.rs`,
		},
		"unnamed source": {
			src:     keytable.NewSource("", ""),
			wantMsg: "<unnamed source>",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := newExtractor(t).ExtractKeys(tc.src)
			require.ErrorIs(t, err, keytable.ErrMarkerNotFound)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestExtractAliases(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src  keytable.Source
		want keytable.AliasMap
	}{
		"symbol aliases": {
			src: aliasSource(`m.insert("⇧", KEY_LEFTSHIFT.into()); m.insert("⌘", KEY_LEFTMETA.into());`),
			want: keytable.AliasMap{
				"leftshift": "⇧",
				"leftmeta":  "⌘",
			},
		},
		"lowercases both sides": {
			src:  aliasSource(`m.insert("CTRL", KEY_LEFTCTRL.into());`),
			want: keytable.AliasMap{"leftctrl": "ctrl"},
		},
		"last write wins": {
			src:  aliasSource(`m.insert("shift", KEY_LEFTSHIFT.into()); m.insert("⇧", KEY_LEFTSHIFT.into());`),
			want: keytable.AliasMap{"leftshift": "⇧"},
		},
		"identifier without method call": {
			src:  aliasSource(`m.insert("esc", KEY_ESC);`),
			want: keytable.AliasMap{"esc": "esc"},
		},
		"space alias": {
			src:  aliasSource(`m.insert(" ", KEY_SPACE.into());`),
			want: keytable.AliasMap{"space": " "},
		},
		"empty body": {
			src:  aliasSource("\n    "),
			want: keytable.AliasMap{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := newExtractor(t).ExtractAliases(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractAliasesErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src     keytable.Source
		wantErr error
		wantMsg string
	}{
		"statement without quoted alias": {
			src:     aliasSource(`m.insert("a", KEY_A.into()); m.insert(KEY_B.into());`),
			wantErr: keytable.ErrPatternMismatch,
			wantMsg: `"m.insert(KEY_B.into())" in key_defs.rs`,
		},
		"statement without prefixed constant": {
			src:     aliasSource(`m.insert("a", BTN_A.into());`),
			wantErr: keytable.ErrPatternMismatch,
			wantMsg: "BTN_A",
		},
		"missing marker": {
			src:     keytable.NewSource("key_defs.rs", "let m = HashMap::new();"),
			wantErr: keytable.ErrMarkerNotFound,
			wantMsg: "let mut m = HashMap::new();",
		},
		"missing terminator": {
			src:     keytable.NewSource("key_defs.rs", `let mut m = HashMap::new(); m.insert("a", KEY_A);`),
			wantErr: keytable.ErrMarkerNotFound,
			wantMsg: `closing marker "m\n"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := newExtractor(t).ExtractAliases(tc.src)
			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorContains(t, err, tc.wantMsg)
			assert.Nil(t, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	enum, err := keytable.ReadSource(filepath.Join("testdata", "enums.rs"))
	require.NoError(t, err)

	alias, err := keytable.ReadSource(filepath.Join("testdata", "key_defs.rs"))
	require.NoError(t, err)

	table, err := newExtractor(t).Extract(enum, alias)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"reserved", "esc", "backspace", "tab", "enter", "leftctrl",
		"leftshift", "kpasterisk", "leftalt", "space", "capslock", "f1",
		"kp7", "yen", "leftmeta", "rightmeta", "up", "down", "numeric_pound",
		"max",
	}, table.Keys)

	assert.Equal(t, keytable.AliasMap{
		"leftalt":   "alt",
		"leftctrl":  "ctrl",
		"leftmeta":  "⌘",
		"leftshift": "⇧",
		"rightmeta": "right_meta",
		"esc":       "escape",
	}, table.Aliases)

	require.Len(t, table.Rows, len(table.Keys))

	for i, row := range table.Rows {
		assert.Equal(t, table.Keys[i], row.Key)
	}

	shift := table.Rows[6]
	assert.Equal(t, "leftshift", shift.Key)
	assert.Equal(t, "⇧", shift.AliasOr(""))
	assert.Equal(t, "left shift", shift.DescriptionOr(""))

	reserved := table.Rows[0]
	assert.Nil(t, reserved.Alias)
	assert.Nil(t, reserved.Description)
}

func TestExtractStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	e := newExtractor(t)

	_, err := e.Extract(keytable.NewSource("enums.rs", ""), aliasSource(""))
	require.ErrorIs(t, err, keytable.ErrMarkerNotFound)
	assert.ErrorContains(t, err, "enums.rs")

	_, err = e.Extract(enumSource("KEY_ESC = 1"), aliasSource(`m.insert(oops);`))
	require.ErrorIs(t, err, keytable.ErrPatternMismatch)
}

func TestNewExtractorRejectsEmptyOptions(t *testing.T) {
	t.Parallel()

	tcs := map[string]keytable.Option{
		"enum marker":      keytable.WithEnumMarker(""),
		"alias marker":     keytable.WithAliasMarker(""),
		"alias terminator": keytable.WithAliasTerminator(""),
		"key prefix":       keytable.WithKeyPrefix(""),
	}

	for name, opt := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := keytable.NewExtractor(opt)
			require.ErrorIs(t, err, keytable.ErrInvalidOption)
			assert.ErrorContains(t, err, name)
		})
	}
}
