package render

import (
	"fmt"
	"io"
	"strings"

	"go.jacobcolvin.com/keydocs/keytable"
)

type markdownRenderer struct {
	opts *options
}

func (r *markdownRenderer) Render(w io.Writer, t *keytable.Table) error {
	var sb strings.Builder

	writeMarkdownRow(&sb, escapeMarkdownCell(r.opts.keyHeader), escapeMarkdownCell(r.opts.descriptionHeader))
	sb.WriteString("| --- | --- |\n")

	for _, row := range t.Rows {
		key := escapeMarkdownCell(row.Key)
		if alias := row.AliasOr(""); alias != "" {
			key = escapeMarkdownCell(alias) + "<br>" + key
		}

		writeMarkdownRow(&sb, key, escapeMarkdownCell(row.DescriptionOr("")))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("%w: %w", keytable.ErrWriteOutput, err)
	}

	return nil
}

func writeMarkdownRow(sb *strings.Builder, cells ...string) {
	sb.WriteString("|")

	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

var markdownCellReplacer = strings.NewReplacer(
	`|`, `\|`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	"\n", " ",
)

func escapeMarkdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}
