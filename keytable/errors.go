package keytable

import "errors"

// Sentinel errors returned by the extractor and document loader.
var (
	ErrMarkerNotFound   = errors.New("marker not found")
	ErrPatternMismatch  = errors.New("alias statement does not match")
	ErrInvalidOption    = errors.New("invalid option")
	ErrInvalidDocument  = errors.New("invalid document")
	ErrReadInput        = errors.New("read input")
	ErrWriteOutput      = errors.New("write output")
	ErrUnsupportedCodec = errors.New("unsupported codec")
)
