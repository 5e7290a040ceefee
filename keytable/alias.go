package keytable

import (
	"fmt"
	"regexp"
	"strings"
)

// AliasMap maps a key name to its short alias.
type AliasMap map[string]string

// Lookup returns the alias for key, if any.
func (m AliasMap) Lookup(key string) (string, bool) {
	alias, ok := m[key]

	return alias, ok
}

// aliasPattern matches statements like
//
//	m.insert("⇧", KEY_LEFTSHIFT.into())
//
// capturing the quoted alias and the identifier after prefix.
func aliasPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`"(.*)".*` + regexp.QuoteMeta(prefix) + `([A-Za-z0-9_]+)`)
}

// ExtractAliases parses the alias initializer body of src. Every non-empty
// statement must match the alias pattern; the first one that does not aborts
// extraction with [ErrPatternMismatch].
func (e *Extractor) ExtractAliases(src Source) (AliasMap, error) {
	block, err := src.Block(e.aliasMarker, e.aliasTerminator)
	if err != nil {
		return nil, err
	}

	aliases := AliasMap{}

	for stmt := range strings.SplitSeq(src.Body(block), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		match := e.aliasPattern.FindStringSubmatch(stmt)
		if match == nil {
			return nil, fmt.Errorf("%w: %q in %s", ErrPatternMismatch, stmt, src.label())
		}

		aliases[strings.ToLower(match[2])] = strings.ToLower(match[1])
	}

	return aliases, nil
}
