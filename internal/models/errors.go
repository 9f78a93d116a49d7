package models

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")

	ErrEmptyDocument      = errors.New("document has no content to chunk")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrParserChainExhausted = errors.New("no parser in the chain produced valid output")
	ErrEmbeddingFailed    = errors.New("embedding generation failed")
	ErrOCRBackendDisabled = errors.New("ocr backend is not configured")
)
