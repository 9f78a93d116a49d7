package ocr

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DummyBackend always returns empty text, grounded on ocr/base.py's
// DummyOCRBackend: the no-op fallback used when no real backend is
// configured.
type DummyBackend struct {
	Logger logrus.FieldLogger
}

func (b DummyBackend) Recognize(_ context.Context, _ []byte) (string, error) {
	logger := b.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.Warn("dummy OCR backend in use, returning empty text")
	return "", nil
}

var _ Backend = DummyBackend{}
