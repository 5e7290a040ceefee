package keytable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for extraction configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	EnumMarker      string
	AliasMarker     string
	AliasTerminator string
	KeyPrefix       string
	StrictPrefix    string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for extraction configuration.
//
// Marker values accept Go string escapes, so a terminator of "m\n" can be
// passed on the command line as `m\n`.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewExtractor] to create an
// [Extractor].
type Config struct {
	Flags           Flags
	EnumMarker      string
	AliasMarker     string
	AliasTerminator string
	KeyPrefix       string
	StrictPrefix    bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		EnumMarker:      "enum-marker",
		AliasMarker:     "alias-marker",
		AliasTerminator: "alias-terminator",
		KeyPrefix:       "key-prefix",
		StrictPrefix:    "strict-prefix",
	}

	return f.NewConfig()
}

// RegisterFlags adds extraction flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.EnumMarker, c.Flags.EnumMarker, escape(DefaultEnumMarker),
		"text introducing the key enumeration body")
	flags.StringVar(&c.AliasMarker, c.Flags.AliasMarker, escape(DefaultAliasMarker),
		"text introducing the alias initializer body")
	flags.StringVar(&c.AliasTerminator, c.Flags.AliasTerminator, escape(DefaultAliasTerminator),
		"text ending the alias initializer body")
	flags.StringVar(&c.KeyPrefix, c.Flags.KeyPrefix, DefaultKeyPrefix,
		"prefix of key constants")
	flags.BoolVar(&c.StrictPrefix, c.Flags.StrictPrefix, false,
		"drop enumeration entries without the key prefix")
}

// RegisterCompletions registers shell completions for extraction flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.EnumMarker,
		c.Flags.AliasMarker,
		c.Flags.AliasTerminator,
		c.Flags.KeyPrefix,
	} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewExtractor creates an [Extractor] using this [Config]. Zero-value fields
// fall back to the defaults.
func (c *Config) NewExtractor() (*Extractor, error) {
	var opts []Option

	for _, v := range []struct {
		flag  string
		value string
		opt   func(string) Option
	}{
		{c.Flags.EnumMarker, c.EnumMarker, WithEnumMarker},
		{c.Flags.AliasMarker, c.AliasMarker, WithAliasMarker},
		{c.Flags.AliasTerminator, c.AliasTerminator, WithAliasTerminator},
		{c.Flags.KeyPrefix, c.KeyPrefix, WithKeyPrefix},
	} {
		if v.value == "" {
			continue
		}

		s, err := unescape(v.value)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidOption, v.flag, err)
		}

		opts = append(opts, v.opt(s))
	}

	opts = append(opts, WithStrictPrefix(c.StrictPrefix))

	return NewExtractor(opts...)
}

// escape renders s with Go escapes but without surrounding quotes.
func escape(s string) string {
	q := strconv.Quote(s)

	return q[1 : len(q)-1]
}

// unescape interprets Go escapes in s. Bare double quotes are taken
// literally.
func unescape(s string) (string, error) {
	var sb strings.Builder

	escaped := false
	for _, r := range s {
		if r == '"' && !escaped {
			sb.WriteByte('\\')
		}

		escaped = r == '\\' && !escaped

		sb.WriteRune(r)
	}

	return strconv.Unquote(`"` + sb.String() + `"`)
}
