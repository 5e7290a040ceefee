package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/keydocs/keytable"
)

const (
	envEnum  = "KEYDOCS_ENUM"
	envAlias = "KEYDOCS_ALIAS"
)

// ErrMissingInput indicates that neither source files nor a data file were
// given.
var ErrMissingInput = errors.New("missing input")

// inputs selects where a command reads its key table from: the two Rust
// sources, or a previously exported data file.
type inputs struct {
	Enum  string
	Alias string
	From  string
}

// register adds the input flags to cmd. When withFrom is set, --from is
// available and excludes the source flags.
func (in *inputs) register(cmd *cobra.Command, getenv func(string) string, withFrom bool) {
	flags := cmd.Flags()

	flags.StringVar(&in.Enum, "enum", getenv(envEnum),
		"file containing the key enumeration (env "+envEnum+")")
	flags.StringVar(&in.Alias, "alias", getenv(envAlias),
		"file containing the alias initializer (env "+envAlias+")")

	for _, name := range []string{"enum", "alias"} {
		_ = cmd.MarkFlagFilename(name, "rs")
	}

	if !withFrom {
		return
	}

	flags.StringVar(&in.From, "from", "", "read an exported data file instead of the sources")

	_ = cmd.MarkFlagFilename("from", "json", "yaml", "yml")

	cmd.MarkFlagsMutuallyExclusive("from", "enum")
	cmd.MarkFlagsMutuallyExclusive("from", "alias")
}

// load builds the key table from the configured inputs.
func (in *inputs) load(cfg *keytable.Config) (*keytable.Table, error) {
	if in.From != "" {
		return loadDocument(in.From)
	}

	if in.Enum == "" || in.Alias == "" {
		return nil, fmt.Errorf("%w: --enum and --alias are required (or set %s and %s)",
			ErrMissingInput, envEnum, envAlias)
	}

	extractor, err := cfg.NewExtractor()
	if err != nil {
		return nil, err
	}

	enum, err := keytable.ReadSource(in.Enum)
	if err != nil {
		return nil, err
	}

	alias, err := keytable.ReadSource(in.Alias)
	if err != nil {
		return nil, err
	}

	t, err := extractor.Extract(enum, alias)
	if err != nil {
		return nil, err
	}

	slog.Debug("alias table", slog.Any("aliases", t.Aliases))

	return t, nil
}

func loadDocument(path string) (*keytable.Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Data file path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", keytable.ErrReadInput, err)
	}

	doc, err := keytable.LoadDocument(data, keytable.CodecForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded data file", slog.String("path", path), slog.Int("keys", len(doc.Keys)))

	return doc.Table(), nil
}
