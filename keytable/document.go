package keytable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// DocumentVersion is the current [Document] format version.
const DocumentVersion = 1

// Codec is a serialization format for [Document].
type Codec string

const (
	// CodecJSON encodes documents as indented JSON.
	CodecJSON Codec = "json"
	// CodecYAML encodes documents as YAML.
	CodecYAML Codec = "yaml"
)

// GetAllCodecStrings returns all supported codec names.
func GetAllCodecStrings() []string {
	return []string{string(CodecJSON), string(CodecYAML)}
}

// ParseCodec parses a codec name, case-insensitively. "yml" is accepted as
// an alias for [CodecYAML].
func ParseCodec(s string) (Codec, error) {
	c := Codec(strings.ToLower(s))
	if c == "yml" {
		c = CodecYAML
	}

	if !slices.Contains([]Codec{CodecJSON, CodecYAML}, c) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCodec, s)
	}

	return c, nil
}

// CodecForPath guesses the codec from a file extension, defaulting to
// [CodecJSON].
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return CodecYAML
	}

	return CodecJSON
}

// Document is the structured export of a [Table]. It is the generated data
// file consumed by documentation builds.
type Document struct {
	Version int   `json:"version" yaml:"version"`
	Keys    []Row `json:"keys"    yaml:"keys"`
}

// NewDocument creates a [Document] from t.
func NewDocument(t *Table) *Document {
	return &Document{
		Version: DocumentVersion,
		Keys:    slices.Clone(t.Rows),
	}
}

// Table rebuilds a [Table] from the document rows.
func (d *Document) Table() *Table {
	t := &Table{
		Keys:    make([]string, 0, len(d.Keys)),
		Aliases: AliasMap{},
		Rows:    slices.Clone(d.Keys),
	}

	for _, row := range d.Keys {
		t.Keys = append(t.Keys, row.Key)
		if row.Alias != nil {
			t.Aliases[row.Key] = *row.Alias
		}
	}

	return t
}

// Encode writes d to w using codec.
func (d *Document) Encode(w io.Writer, codec Codec) error {
	var (
		out []byte
		err error
	)

	switch codec {
	case CodecJSON:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		err = enc.Encode(d)
		out = buf.Bytes()

	case CodecYAML:
		out, err = yaml.Marshal(d)

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedCodec, codec)
	}

	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrWriteOutput, codec, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// LoadDocument decodes data with codec and validates it against
// [DocumentSchema]. Documents that fail validation, or that carry an
// unsupported version, return [ErrInvalidDocument].
func LoadDocument(data []byte, codec Codec) (*Document, error) {
	raw := data

	switch codec {
	case CodecJSON:
	case CodecYAML:
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		raw = converted

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, codec)
	}

	var instance any

	err := json.Unmarshal(raw, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	resolved, err := DocumentSchema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve document schema: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var doc Document

	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, doc.Version)
	}

	return &doc, nil
}

// DocumentSchema returns the JSON Schema describing [Document].
func DocumentSchema() *jsonschema.Schema {
	minKeyLen := 2

	row := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"key"},
		Properties: map[string]*jsonschema.Schema{
			"key": {
				Type:        "string",
				MinLength:   &minKeyLen,
				Description: "Canonical lowercase key name.",
			},
			"alias": {
				Type:        "string",
				Description: "Short alias accepted in place of the key name.",
			},
			"description": {
				Type:        "string",
				Description: "Human-readable description of the key.",
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Title:       "Valid keys",
		Description: "Key names, aliases and descriptions accepted by the key remapper.",
		Type:        "object",
		Required:    []string{"version", "keys"},
		Properties: map[string]*jsonschema.Schema{
			"version": {
				Type:        "integer",
				Description: "Document format version.",
			},
			"keys": {
				Type:  "array",
				Items: row,
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}
