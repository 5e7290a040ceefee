package keytable

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// ExtractKeys returns the normalized key names declared in the enumeration
// body of src, in source order.
func (e *Extractor) ExtractKeys(src Source) ([]string, error) {
	block, err := src.Block(e.enumMarker, DefaultEnumTerminator)
	if err != nil {
		return nil, err
	}

	var keys []string

	for candidate := range strings.SplitSeq(src.Body(block), ",") {
		key, ok := e.normalizeKey(candidate)
		if !ok {
			continue
		}

		keys = append(keys, key)
	}

	return keys, nil
}

// normalizeKey turns one enumeration entry such as "KEY_LEFTSHIFT = 42" into
// "leftshift". It reports false for entries that should not become rows.
func (e *Extractor) normalizeKey(candidate string) (string, bool) {
	name := strings.TrimSpace(candidate)

	stripped, ok := strings.CutPrefix(name, e.prefix)
	if !ok && e.strictPrefix {
		if name != "" {
			slog.Debug("dropping enum entry without key prefix",
				slog.String("entry", name),
				slog.String("prefix", e.prefix),
			)
		}

		return "", false
	}

	// Drop the value assignment or trailing comment.
	if i := strings.IndexByte(stripped, ' '); i >= 0 {
		stripped = stripped[:i]
	}

	key := strings.ToLower(stripped)
	if utf8.RuneCountInString(key) <= 1 || IsLiteral(key) {
		return "", false
	}

	return key, true
}
