package render

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.jacobcolvin.com/keydocs/keytable"
)

// Format represents a table output format.
type Format string

const (
	// FormatHTML renders a sanitized HTML table fragment.
	FormatHTML Format = "html"
	// FormatMarkdown renders a GitHub-flavored Markdown table.
	FormatMarkdown Format = "markdown"
	// FormatText renders a bordered plain-text table.
	FormatText Format = "text"
	// FormatJSON renders the JSON data file.
	FormatJSON Format = "json"
	// FormatYAML renders the YAML data file.
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat indicates an unrecognized format string.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrRender indicates the table could not be rendered.
	ErrRender = errors.New("render")
)

// Default column headers, matching the published docs.
const (
	DefaultKeyHeader         = "Key names"
	DefaultDescriptionHeader = "Description"
)

var allFormats = []Format{FormatHTML, FormatMarkdown, FormatText, FormatJSON, FormatYAML}

// GetAllFormatStrings returns all supported format names.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}

// ParseFormat parses a format string, case-insensitively. "md" and "yml" are
// accepted as aliases.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))

	switch f {
	case "md":
		f = FormatMarkdown
	case "yml":
		f = FormatYAML
	}

	if !slices.Contains(allFormats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return f, nil
}

// Renderer writes a [keytable.Table].
type Renderer interface {
	Render(w io.Writer, t *keytable.Table) error
}

type options struct {
	htmlTemplate      string
	keyHeader         string
	descriptionHeader string
	width             int
}

// Option configures a [Renderer].
type Option func(*options)

// WithWidth limits the text table to width columns. Zero means unlimited.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = max(width, 0)
	}
}

// WithHTMLTemplate replaces the built-in pongo2 template used by
// [FormatHTML]. The template receives "rows" and "headers".
func WithHTMLTemplate(tpl string) Option {
	return func(o *options) {
		o.htmlTemplate = tpl
	}
}

// WithHeaders overrides the key and description column headers.
func WithHeaders(key, description string) Option {
	return func(o *options) {
		if key != "" {
			o.keyHeader = key
		}

		if description != "" {
			o.descriptionHeader = description
		}
	}
}

// New creates a [Renderer] for format.
func New(format Format, opts ...Option) (Renderer, error) {
	o := &options{
		htmlTemplate:      defaultHTMLTemplate,
		keyHeader:         DefaultKeyHeader,
		descriptionHeader: DefaultDescriptionHeader,
	}

	for _, opt := range opts {
		opt(o)
	}

	switch format {
	case FormatHTML:
		return newHTMLRenderer(o)
	case FormatMarkdown:
		return &markdownRenderer{opts: o}, nil
	case FormatText:
		return &textRenderer{opts: o}, nil
	case FormatJSON:
		return &documentRenderer{codec: keytable.CodecJSON}, nil
	case FormatYAML:
		return &documentRenderer{codec: keytable.CodecYAML}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// documentRenderer writes the generated data file.
type documentRenderer struct {
	codec keytable.Codec
}

func (r *documentRenderer) Render(w io.Writer, t *keytable.Table) error {
	return keytable.NewDocument(t).Encode(w, r.codec)
}

// keyCell returns the alias and key the way the docs show them: the alias
// first when there is one.
func keyCell(row keytable.Row, sep string) string {
	alias := row.AliasOr("")
	if alias == "" {
		return row.Key
	}

	return alias + sep + row.Key
}
