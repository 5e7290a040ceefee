// Package render writes a [keytable.Table] in the formats consumed by the
// documentation site.
//
// [FormatHTML] produces the table fragment embedded in the "keys and key
// sequences" page. [FormatMarkdown] and [FormatText] are meant for review and
// terminals, and [FormatJSON] and [FormatYAML] write the generated data file
// described in [keytable.Document].
package render
