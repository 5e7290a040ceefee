package keytable

import (
	"fmt"
	"log/slog"
	"regexp"
)

// Default markers matching the key remapper's source layout.
const (
	DefaultEnumMarker      = "pub enum EV_KEY {"
	DefaultEnumTerminator  = "}"
	DefaultAliasMarker     = "let mut m = HashMap::new();"
	DefaultAliasTerminator = "m\n"
	DefaultKeyPrefix       = "KEY_"
)

// Extractor turns the enumeration and alias sources into a [Table].
//
// Create instances with [NewExtractor].
type Extractor struct {
	aliasPattern    *regexp.Regexp
	enumMarker      string
	aliasMarker     string
	aliasTerminator string
	prefix          string
	strictPrefix    bool
}

// Option configures an [Extractor].
type Option func(*Extractor)

// NewExtractor creates an [Extractor] with the default markers, modified by
// opts. Empty markers or an empty prefix return [ErrInvalidOption].
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		enumMarker:      DefaultEnumMarker,
		aliasMarker:     DefaultAliasMarker,
		aliasTerminator: DefaultAliasTerminator,
		prefix:          DefaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(e)
	}

	for name, v := range map[string]string{
		"enum marker":      e.enumMarker,
		"alias marker":     e.aliasMarker,
		"alias terminator": e.aliasTerminator,
		"key prefix":       e.prefix,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidOption, name)
		}
	}

	e.aliasPattern = aliasPattern(e.prefix)

	return e, nil
}

// WithEnumMarker sets the text that introduces the enumeration body.
func WithEnumMarker(marker string) Option {
	return func(e *Extractor) {
		e.enumMarker = marker
	}
}

// WithAliasMarker sets the text that introduces the alias initializer body.
func WithAliasMarker(marker string) Option {
	return func(e *Extractor) {
		e.aliasMarker = marker
	}
}

// WithAliasTerminator sets the text that ends the alias initializer body.
func WithAliasTerminator(terminator string) Option {
	return func(e *Extractor) {
		e.aliasTerminator = terminator
	}
}

// WithKeyPrefix sets the constant prefix stripped from enumeration entries
// and required in alias statements.
func WithKeyPrefix(prefix string) Option {
	return func(e *Extractor) {
		e.prefix = prefix
	}
}

// WithStrictPrefix drops enumeration entries that lack the key prefix instead
// of keeping them unstripped.
func WithStrictPrefix(strict bool) Option {
	return func(e *Extractor) {
		e.strictPrefix = strict
	}
}

// Table is the result of a full extraction.
type Table struct {
	// Aliases maps key names to their short alias.
	Aliases AliasMap
	// Keys holds key names in enumeration order.
	Keys []string
	// Rows holds one entry per element of Keys.
	Rows []Row
}

// Extract runs the full pipeline: key names from enum, aliases from alias,
// and rows composed with the built-in description table.
func (e *Extractor) Extract(enum, alias Source) (*Table, error) {
	keys, err := e.ExtractKeys(enum)
	if err != nil {
		return nil, err
	}

	aliases, err := e.ExtractAliases(alias)
	if err != nil {
		return nil, err
	}

	slog.Debug("extracted key table",
		slog.String("enum", enum.Name),
		slog.String("alias", alias.Name),
		slog.Int("keys", len(keys)),
		slog.Int("aliases", len(aliases)),
	)

	return &Table{
		Keys:    keys,
		Aliases: aliases,
		Rows:    Compose(keys, aliases, Descriptions()),
	}, nil
}
