// Package ocr extracts text from images pulled out of parsed documents,
// grounded on the reference docreader's ocr package (original_source/
// docreader/ocr/*.py).
package ocr

import "context"

// Backend extracts text from a single image. Grounded on ocr/base.py's
// OCRBackend ABC; predict(image) narrows here to raw image bytes, since
// Go has no PIL-Image-or-path-or-bytes union to accommodate.
type Backend interface {
	Recognize(ctx context.Context, imageBytes []byte) (string, error)
}
