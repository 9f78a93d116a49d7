package services

import (
	"context"
	"sync"

	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"

	"docreader/internal/store"
)

// EmbeddingProvider is a single embedding backend, adapted from the
// teacher's types.go EmbeddingProvider interface.
type EmbeddingProvider interface {
	Name() string
	ModelName() string
	Status() store.ProviderStatus
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Dimension() int
}

// RetryStrategy decides how long to wait before the next retry, or signals
// give-up by returning a negative duration.
type RetryStrategy interface {
	NextBackoff(attempt int) int64 // ms
}

// FallbackEmbeddingService tries providers in order with retries,
// adapted from the teacher's FallbackEmbeddingService; this module wires
// it with a single OpenAI provider, but the fallback/retry machinery is
// kept since it is orthogonal to provider count.
type FallbackEmbeddingService struct {
	Providers      []EmbeddingProvider
	ActiveProvider int
	RetryStrategy  RetryStrategy
	Logger         logrus.FieldLogger
	mu             sync.RWMutex
}

func (s *FallbackEmbeddingService) ModelName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 || s.ActiveProvider < 0 || s.ActiveProvider >= len(s.Providers) {
		return ""
	}
	return s.Providers[s.ActiveProvider].ModelName()
}

func (s *FallbackEmbeddingService) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 || s.ActiveProvider < 0 || s.ActiveProvider >= len(s.Providers) {
		return ""
	}
	return s.Providers[s.ActiveProvider].Name()
}

func (s *FallbackEmbeddingService) Status() store.ProviderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 || s.ActiveProvider < 0 || s.ActiveProvider >= len(s.Providers) {
		return store.ProviderStatusDisabled
	}
	return s.Providers[s.ActiveProvider].Status()
}

var _ store.EmbeddingService = (*FallbackEmbeddingService)(nil)

// SimpleRetryStrategy provides basic exponential backoff, capped at 30s.
type SimpleRetryStrategy struct {
	MaxAttempts int
	BaseDelayMs int64
}

func (s *SimpleRetryStrategy) NextBackoff(attempt int) int64 {
	if s.MaxAttempts <= 0 || attempt >= s.MaxAttempts {
		return -1
	}
	backoff := s.BaseDelayMs * (1 << attempt)
	const maxDelay = int64(30000)
	if backoff > maxDelay {
		backoff = maxDelay
	}
	return backoff
}
