package keytable

import (
	"fmt"
	"os"
	"strings"
)

// Source is a named blob of foreign source text. The name is only used to
// identify the source in errors and logs.
type Source struct {
	Name string
	Text string
}

// NewSource creates a [Source] from in-memory text. CRLF line endings are
// normalized to LF so markers containing newlines match on every platform.
func NewSource(name, text string) Source {
	return Source{Name: name, Text: strings.ReplaceAll(text, "\r\n", "\n")}
}

// ReadSource reads the file at path into a [Source] named after the path.
func ReadSource(path string) (Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Source path from CLI flag is expected.
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return NewSource(path, string(data)), nil
}

// Block is the byte range of a delimited body within a [Source]. Start is the
// offset just past the opening marker and End is the offset of the closing
// marker, so the body excludes both.
type Block struct {
	Start int
	End   int
}

// Len returns the length of the body in bytes.
func (b Block) Len() int {
	return b.End - b.Start
}

// Block locates the first occurrence of open and the first occurrence of
// closing after it. Either marker being absent returns [ErrMarkerNotFound].
func (s Source) Block(open, closing string) (Block, error) {
	i := strings.Index(s.Text, open)
	if i < 0 {
		return Block{}, fmt.Errorf("%w: opening marker %q in %s", ErrMarkerNotFound, open, s.label())
	}

	start := i + len(open)

	j := strings.Index(s.Text[start:], closing)
	if j < 0 {
		return Block{}, fmt.Errorf("%w: closing marker %q in %s", ErrMarkerNotFound, closing, s.label())
	}

	return Block{Start: start, End: start + j}, nil
}

// Body returns the text covered by b.
func (s Source) Body(b Block) string {
	return s.Text[b.Start:b.End]
}

func (s Source) label() string {
	if s.Name == "" {
		return "<unnamed source>"
	}

	return s.Name
}
