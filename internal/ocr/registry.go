package ocr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"docreader/internal/config"
)

// Registry caches one Backend instance per kind, mutex-guarded, grounded
// on ocr/__init__.py's OCREngine (a classmethod factory backed by a dict
// and a threading.Lock). The cache exists so repeated lookups for the
// same backend kind reuse one configured client rather than rebuilding
// it per call; unlike the chunking core, nothing here forbids injected
// shared state.
type Registry struct {
	mu        sync.Mutex
	instances map[string]Backend
	cfg       config.Config
	logger    logrus.FieldLogger
}

func NewRegistry(cfg config.Config, logger logrus.FieldLogger) *Registry {
	return &Registry{
		instances: make(map[string]Backend),
		cfg:       cfg,
		logger:    logger,
	}
}

func (r *Registry) Get(kind string) (Backend, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = "dummy"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.instances[kind]; ok {
		return inst, nil
	}

	if r.logger != nil {
		r.logger.WithField("backend", kind).Info("creating ocr backend instance")
	}

	var inst Backend
	switch kind {
	case "paddle":
		if r.cfg.OCR.PaddleURL == "" {
			return nil, fmt.Errorf("ocr backend paddle: %w", config.ErrMissingPaddleURL)
		}
		inst = PaddleBackend{Endpoint: r.cfg.OCR.PaddleURL}
	case "vlm":
		client := openai.NewClientWithConfig(vlmClientConfig(r.cfg))
		inst = VLMBackend{Client: client, Model: r.cfg.OCR.VLMModel}
	case "dummy":
		inst = DummyBackend{Logger: r.logger}
	default:
		return nil, fmt.Errorf("ocr backend %q: %w", kind, config.ErrUnknownOCRBackend)
	}

	r.instances[kind] = inst
	return inst, nil
}

func vlmClientConfig(cfg config.Config) openai.ClientConfig {
	clientCfg := openai.DefaultConfig(cfg.OCR.VLMAPIKey)
	if cfg.OCR.VLMBaseURL != "" {
		clientCfg.BaseURL = cfg.OCR.VLMBaseURL
	}
	return clientCfg
}
