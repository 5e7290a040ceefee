// Command keydocs builds the valid key names table for the key remapper's
// documentation.
//
// It scrapes the key enumeration and the alias initializer out of the
// remapper's Rust sources, joins them with the built-in description table and
// writes the result as an HTML fragment, a Markdown table, a plain-text table,
// or a versioned JSON/YAML data file.
//
// # Usage
//
//	keydocs table  --enum enums.rs --alias key_defs.rs [-f html|markdown|text|json|yaml] [-o FILE]
//	keydocs table  --from keys.json -f markdown
//	keydocs export --enum enums.rs --alias key_defs.rs -o keys.yaml
//	keydocs schema
//	keydocs browse --enum enums.rs --alias key_defs.rs
//	keydocs version
//
// The --enum and --alias flags default to the KEYDOCS_ENUM and KEYDOCS_ALIAS
// environment variables, which may also be set in a .env file in the working
// directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/keydocs/keytable"
	"go.jacobcolvin.com/keydocs/log"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err = newRootCommand(os.Getenv).ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app carries configuration shared by every subcommand.
type app struct {
	logCfg     *log.Config
	extractCfg *keytable.Config
	getenv     func(string) string
}

// newRootCommand builds the command tree. getenv supplies flag defaults from
// the environment.
func newRootCommand(getenv func(string) string) *cobra.Command {
	a := &app{
		logCfg:     log.NewConfig(),
		extractCfg: keytable.NewConfig(),
		getenv:     getenv,
	}

	rootCmd := &cobra.Command{
		Use:   "keydocs",
		Short: "Generate the valid key names table for the docs",
		Long: `keydocs extracts key names from the remapper's key enumeration, attaches
their short aliases and human-readable descriptions, and renders the result for
the documentation site.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd.ErrOrStderr())
		},
	}

	a.logCfg.RegisterFlags(rootCmd.PersistentFlags())
	a.extractCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.extractCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		a.newTableCommand(),
		a.newExportCommand(),
		a.newSchemaCommand(),
		a.newBrowseCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// setupLogging installs the default logger writing to w.
func (a *app) setupLogging(w io.Writer) error {
	handler, err := a.logCfg.NewHandler(w)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	return nil
}
