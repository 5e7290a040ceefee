// Package keytable derives the "valid keys" reference table from the key
// remapper's own source code.
//
// Two source files are involved. The first defines the key code enumeration
// (one constant per physical key, each named with a fixed prefix such as
// KEY_). The second defines a lookup table that maps short aliases to those
// constants. The package scrapes both, normalizes the names and joins them
// with a hand-maintained description table to produce one [Row] per key.
//
// # Pipeline
//
// [Extractor.Extract] runs three stages:
//
//  1. Enum extraction: the enumeration body is located with
//     [Source.Block], split on commas, stripped of the key prefix, cut at
//     the first space, lowercased and filtered. Names of length one and
//     names in the literal filter (see [IsLiteral]) are dropped. Source order
//     is preserved.
//
//  2. Alias extraction: the initializer body is split on semicolons and
//     every statement must match the quoted-alias/prefixed-constant shape.
//     A statement that does not match aborts extraction with
//     [ErrPatternMismatch]. Later statements overwrite earlier ones.
//
//  3. Composition: [Compose] emits exactly one [Row] per key name, attaching
//     the alias and the description when either exists.
//
// Every stage is a pure function of its input text. Missing markers are
// reported as [ErrMarkerNotFound] instead of yielding an empty table.
//
// # Generated Data File
//
// Scraping source text couples the docs to the layout of unrelated code. A
// [Document] is the structured export of a [Table]: it can be written as JSON
// or YAML and loaded back with [LoadDocument], which validates it against
// [DocumentSchema]. Docs builds should prefer consuming the exported document.
package keytable
