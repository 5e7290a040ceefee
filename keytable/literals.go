package keytable

import (
	"maps"
	"slices"
)

// literals are keys documented elsewhere as punctuation and symbol keys.
var literals = map[string]struct{}{
	"apostrophe": {},
	"backslash":  {},
	"comma":      {},
	"dollar":     {},
	"dot":        {},
	"equal":      {},
	"euro":       {},
	"grave":      {},
	"leftbrace":  {},
	"minus":      {},
	"rightbrace": {},
	"semicolon":  {},
	"slash":      {},
}

// IsLiteral reports whether key is excluded from the table because it is
// documented as a symbol key.
func IsLiteral(key string) bool {
	_, ok := literals[key]

	return ok
}

// Literals returns the sorted literal filter set.
func Literals() []string {
	return slices.Sorted(maps.Keys(literals))
}
