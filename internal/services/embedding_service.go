package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
)

// NewFallbackEmbeddingService creates a new fallback service, adapted from
// the teacher's constructor of the same name.
func NewFallbackEmbeddingService(providers []EmbeddingProvider, strategy RetryStrategy, logger logrus.FieldLogger) (*FallbackEmbeddingService, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one embedding provider is required")
	}
	if strategy == nil {
		strategy = &SimpleRetryStrategy{MaxAttempts: 3, BaseDelayMs: 100}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(providers) > 1 {
		dim := providers[0].Dimension()
		for i := 1; i < len(providers); i++ {
			if providers[i].Dimension() != dim {
				return nil, fmt.Errorf("all embedding providers must have the same dimension (provider %s has %d, expected %d)",
					providers[i].Name(), providers[i].Dimension(), dim)
			}
		}
	}

	return &FallbackEmbeddingService{
		Providers:      providers,
		ActiveProvider: 0,
		RetryStrategy:  strategy,
		Logger:         logger,
	}, nil
}

func (s *FallbackEmbeddingService) Dimension() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.Providers) == 0 {
		s.Logger.Warn("fallback embedding service has no providers, returning dimension 0")
		return 0
	}
	return s.Providers[s.ActiveProvider].Dimension()
}

// GenerateEmbedding tries providers with retries until one succeeds or all fail.
func (s *FallbackEmbeddingService) GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	s.mu.RLock()
	initialProviderIndex := s.ActiveProvider
	numProviders := len(s.Providers)
	if numProviders == 0 {
		s.mu.RUnlock()
		return pgvector.Vector{}, fmt.Errorf("no embedding providers configured")
	}
	s.mu.RUnlock()

	var lastErr error
	attempt := 0

	for {
		s.mu.RLock()
		currentProviderIndex := s.ActiveProvider
		provider := s.Providers[currentProviderIndex]
		s.mu.RUnlock()

		vec, err := provider.GenerateEmbedding(ctx, text)

		if ctx.Err() != nil {
			return pgvector.Vector{}, fmt.Errorf("context cancelled during embedding generation: %w", ctx.Err())
		}

		if err == nil {
			return vec, nil
		}

		lastErr = fmt.Errorf("provider %s failed: %w", provider.Name(), err)
		s.Logger.WithError(err).WithField("provider", provider.Name()).Warn("embedding provider failed")

		backoffMs := s.RetryStrategy.NextBackoff(attempt)
		if backoffMs < 0 {
			s.mu.Lock()
			nextProviderIndex := (s.ActiveProvider + 1) % numProviders
			if nextProviderIndex == initialProviderIndex {
				s.mu.Unlock()
				return pgvector.Vector{}, fmt.Errorf("all embedding providers failed after cycling through: last error: %w", lastErr)
			}
			s.ActiveProvider = nextProviderIndex
			s.mu.Unlock()

			attempt = 0
			continue
		}

		select {
		case <-time.After(time.Duration(backoffMs) * time.Millisecond):
			attempt++
		case <-ctx.Done():
			return pgvector.Vector{}, fmt.Errorf("context cancelled while waiting to retry: %w", ctx.Err())
		}
	}
}

// GenerateEmbeddings handles batch generation with fallback and retries.
func (s *FallbackEmbeddingService) GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	s.mu.RLock()
	initialProviderIndex := s.ActiveProvider
	numProviders := len(s.Providers)
	if numProviders == 0 {
		s.mu.RUnlock()
		return nil, fmt.Errorf("no embedding providers configured")
	}
	s.mu.RUnlock()

	var lastErr error
	attempt := 0

	for {
		s.mu.RLock()
		currentProviderIndex := s.ActiveProvider
		provider := s.Providers[currentProviderIndex]
		s.mu.RUnlock()

		vecs, err := provider.GenerateEmbeddings(ctx, texts)

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during batch embedding generation: %w", ctx.Err())
		}

		if err == nil {
			if len(vecs) != len(texts) {
				lastErr = fmt.Errorf("provider %s returned mismatched vector count (%d != %d)", provider.Name(), len(vecs), len(texts))
			} else {
				return vecs, nil
			}
		} else {
			lastErr = fmt.Errorf("provider %s failed batch generation: %w", provider.Name(), err)
			s.Logger.WithError(err).WithField("provider", provider.Name()).Warn("embedding provider failed batch generation")
		}

		backoffMs := s.RetryStrategy.NextBackoff(attempt)
		if backoffMs < 0 {
			s.mu.Lock()
			nextProviderIndex := (s.ActiveProvider + 1) % numProviders
			if nextProviderIndex == initialProviderIndex {
				s.mu.Unlock()
				return nil, fmt.Errorf("all embedding providers failed batch generation after cycling through: last error: %w", lastErr)
			}
			s.ActiveProvider = nextProviderIndex
			s.mu.Unlock()

			attempt = 0
			continue
		}

		select {
		case <-time.After(time.Duration(backoffMs) * time.Millisecond):
			attempt++
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled while waiting to retry batch: %w", ctx.Err())
		}
	}
}
