package keytable_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/keydocs/keytable"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := keytable.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cmd.ParseFlags(nil))

	assert.Equal(t, "pub enum EV_KEY {", cfg.EnumMarker)
	assert.Equal(t, `m\n`, cfg.AliasTerminator)
	assert.Equal(t, "KEY_", cfg.KeyPrefix)
	assert.False(t, cfg.StrictPrefix)

	e, err := cfg.NewExtractor()
	require.NoError(t, err)

	got, err := e.ExtractAliases(keytable.NewSource("key_defs.rs",
		"let mut m = HashMap::new();\n    m.insert(\"⇧\", KEY_LEFTSHIFT.into());\n    m\n"))
	require.NoError(t, err)
	assert.Equal(t, keytable.AliasMap{"leftshift": "⇧"}, got)
}

func TestConfigFlags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src  keytable.Source
		args []string
		want []string
	}{
		"custom prefix": {
			args: []string{"--enum-marker", "pub enum EV_BTN {", "--key-prefix", "BTN_"},
			src:  keytable.NewSource("enums.rs", "pub enum EV_BTN { BTN_LEFT = 272, KEY_ESC = 1 }"),
			want: []string{"left", "key_esc"},
		},
		"strict prefix": {
			args: []string{"--enum-marker", "pub enum EV_BTN {", "--key-prefix", "BTN_", "--strict-prefix"},
			src:  keytable.NewSource("enums.rs", "pub enum EV_BTN { BTN_LEFT = 272, KEY_ESC = 1 }"),
			want: []string{"left"},
		},
		"escaped marker": {
			args: []string{"--enum-marker", `enum Keys {\n`},
			src:  keytable.NewSource("keys.rs", "enum Keys {\nKEY_ESC = 1 }"),
			want: []string{"esc"},
		},
		"quoted marker": {
			args: []string{"--enum-marker", `#[name = "keys"] enum K {`},
			src:  keytable.NewSource("keys.rs", `#[name = "keys"] enum K { KEY_TAB = 15 }`),
			want: []string{"tab"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := keytable.NewConfig()
			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())

			require.NoError(t, cmd.ParseFlags(tc.args))

			e, err := cfg.NewExtractor()
			require.NoError(t, err)

			got, err := e.ExtractKeys(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigInvalidEscape(t *testing.T) {
	t.Parallel()

	cfg := keytable.NewConfig()
	cfg.AliasTerminator = `m\q`

	_, err := cfg.NewExtractor()
	require.ErrorIs(t, err, keytable.ErrInvalidOption)
	assert.ErrorContains(t, err, "--alias-terminator")
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := keytable.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	for _, flag := range []string{"enum-marker", "alias-marker", "alias-terminator", "key-prefix"} {
		completionFn, ok := cmd.GetFlagCompletionFunc(flag)
		require.True(t, ok, flag)

		values, directive := completionFn(cmd, nil, "")
		assert.Empty(t, values)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}
