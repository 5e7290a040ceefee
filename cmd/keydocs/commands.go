package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/keydocs/keytable"
	"go.jacobcolvin.com/keydocs/render"
	"go.jacobcolvin.com/keydocs/version"
)

func (a *app) newTableCommand() *cobra.Command {
	var (
		in         inputs
		format     string
		output     string
		width      int
		tplPath    string
		keyHeader  string
		descHeader string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render the key names table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := []render.Option{render.WithHeaders(keyHeader, descHeader)}

			if tplPath != "" {
				tpl, err := os.ReadFile(tplPath) //nolint:gosec // Template path from CLI flag is expected.
				if err != nil {
					return fmt.Errorf("%w: %w", keytable.ErrReadInput, err)
				}

				opts = append(opts, render.WithHTMLTemplate(string(tpl)))
			}

			if width == 0 && isStdout(output) {
				width = terminalWidth(cmd.OutOrStdout())
			}

			opts = append(opts, render.WithWidth(width))

			r, err := render.New(f, opts...)
			if err != nil {
				return err
			}

			t, err := in.load(a.extractCfg)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return r.Render(w, t)
			})
		},
	}

	in.register(cmd, a.getenv, true)

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", string(render.FormatHTML),
		fmt.Sprintf("output format, one of: %s", render.GetAllFormatStrings()))
	flags.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	flags.IntVarP(&width, "width", "w", 0, "text table width (default terminal width)")
	flags.StringVar(&tplPath, "html-template", "", "pongo2 template replacing the built-in HTML table")
	flags.StringVar(&keyHeader, "key-header", render.DefaultKeyHeader, "key column header")
	flags.StringVar(&descHeader, "description-header", render.DefaultDescriptionHeader, "description column header")

	_ = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(render.GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (a *app) newExportCommand() *cobra.Command {
	var (
		in     inputs
		codec  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the generated key data file",
		Long: `export runs the extraction and writes a versioned data file that the
documentation build can read instead of scraping source text. The format
defaults to the output file extension, or JSON when writing to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := keytable.CodecForPath(output)
			if codec != "" {
				var err error

				c, err = keytable.ParseCodec(codec)
				if err != nil {
					return err
				}
			}

			t, err := in.load(a.extractCfg)
			if err != nil {
				return err
			}

			doc := keytable.NewDocument(t)

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return doc.Encode(w, c)
			})
		},
	}

	in.register(cmd, a.getenv, false)

	flags := cmd.Flags()
	flags.StringVarP(&codec, "format", "f", "",
		fmt.Sprintf("data file format, one of: %s", keytable.GetAllCodecStrings()))
	flags.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	_ = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(keytable.GetAllCodecStrings(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (a *app) newSchemaCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(keytable.DocumentSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", keytable.ErrWriteOutput, err)
			}

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				_, err := w.Write(append(out, '\n'))

				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())

				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(info)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func isStdout(output string) bool {
	return output == "" || output == "-"
}

// writeOutput renders with fn into memory, then writes the result to stdout
// or to the file at path. Nothing is written when fn fails.
func writeOutput(stdout io.Writer, path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer

	err := fn(&buf)
	if err != nil {
		return err
	}

	if isStdout(path) {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(path, buf.Bytes(), 0o644)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", keytable.ErrWriteOutput, err)
	}

	return nil
}

// terminalWidth returns the width of w when it is a terminal, and zero
// otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}
