package render

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"go.jacobcolvin.com/keydocs/keytable"
)

type textRenderer struct {
	opts *options
}

func (r *textRenderer) Render(w io.Writer, t *keytable.Table) error {
	_, err := io.WriteString(w, TextTable(t, r.opts.width, r.opts.keyHeader, r.opts.descriptionHeader).String()+"\n")
	if err != nil {
		return fmt.Errorf("%w: %w", keytable.ErrWriteOutput, err)
	}

	return nil
}

// TextTable builds the bordered table used by [FormatText] and the
// interactive browser. A width of zero leaves the table unconstrained.
func TextTable(t *keytable.Table, width int, keyHeader, descriptionHeader string) *table.Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, []string{keyCell(row, " "), row.DescriptionOr("")})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(keyHeader, descriptionHeader).
		Rows(rows...)

	if width > 0 {
		tbl = tbl.Width(width)
	}

	return tbl
}
