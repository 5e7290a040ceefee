package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"go.jacobcolvin.com/keydocs/keytable"
)

const defaultHTMLTemplate = `<table>
<tbody>
<tr>
<th>{{ headers.key }}</th>
<th>{{ headers.description }}</th>
</tr>
{% for row in rows %}<tr>
<td>{% if row.alias %}{{ row.alias }}<br />{% endif %}{{ row.key }}</td>
<td>{{ row.description }}</td>
</tr>
{% endfor %}</tbody>
</table>
`

var (
	tablePolicyOnce sync.Once
	tablePolicy     *bluemonday.Policy
)

// tableSanitizer allows table markup and class attributes, nothing else.
// Custom templates cannot inject scripts or links into the docs page.
func tableSanitizer() *bluemonday.Policy {
	tablePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"table", "thead", "tbody", "tfoot", "tr", "th", "td",
			"br", "code", "kbd", "span",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("colspan", "rowspan", "scope").OnElements("th", "td")

		tablePolicy = policy
	})

	return tablePolicy
}

type htmlRenderer struct {
	tpl  *pongo2.Template
	opts *options
}

func newHTMLRenderer(o *options) (*htmlRenderer, error) {
	tpl, err := pongo2.FromString(o.htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html template: %w", ErrRender, err)
	}

	return &htmlRenderer{tpl: tpl, opts: o}, nil
}

func (r *htmlRenderer) Render(w io.Writer, t *keytable.Table) error {
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, map[string]any{
			"key":         row.Key,
			"alias":       row.AliasOr(""),
			"description": row.DescriptionOr(""),
		})
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"rows": rows,
		"headers": map[string]string{
			"key":         r.opts.keyHeader,
			"description": r.opts.descriptionHeader,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: execute html template: %w", ErrRender, err)
	}

	clean := tableSanitizer().Sanitize(out)
	if !strings.HasSuffix(clean, "\n") {
		clean += "\n"
	}

	_, err = io.WriteString(w, clean)
	if err != nil {
		return fmt.Errorf("%w: %w", keytable.ErrWriteOutput, err)
	}

	return nil
}
