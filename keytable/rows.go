package keytable

// Row is one line of the valid keys table. Alias and Description are nil when
// no entry exists for Key.
type Row struct {
	Alias       *string `json:"alias,omitempty"       yaml:"alias,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Key         string  `json:"key"                   yaml:"key"`
}

// AliasOr returns the alias, or fallback when there is none.
func (r Row) AliasOr(fallback string) string {
	if r.Alias == nil {
		return fallback
	}

	return *r.Alias
}

// DescriptionOr returns the description, or fallback when there is none.
func (r Row) DescriptionOr(fallback string) string {
	if r.Description == nil {
		return fallback
	}

	return *r.Description
}

// Compose joins keys with their aliases and descriptions. It emits exactly
// one [Row] per key, in order, and never filters.
func Compose(keys []string, aliases AliasMap, descriptions map[string]string) []Row {
	rows := make([]Row, 0, len(keys))

	for _, key := range keys {
		row := Row{Key: key}

		if alias, ok := aliases[key]; ok {
			row.Alias = &alias
		}

		if desc, ok := descriptions[key]; ok {
			row.Description = &desc
		}

		rows = append(rows, row)
	}

	return rows
}
