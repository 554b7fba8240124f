package mediabackend

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tendant/media-backend/pkg/mediabackend/objectkey"
)

// service implements the Service interface.
type service struct {
	repository Repository
	store      ObjectStore
	keys       objectkey.Generator
	logger     *slog.Logger

	// Base delay between upload retry attempts, doubled per attempt.
	// Zero means immediate retries.
	retryBackoff time.Duration

	// Serialize the delete/clear+write pairs so two concurrent replace
	// or activate calls on the same type cannot interleave. In-process
	// guarantee only; multi-instance deployments need a serializable
	// transaction around the pair.
	aboutMu sync.Mutex
	liveMu  sync.Mutex
}

// Option represents a functional option for configuring the service.
type Option func(*service)

// WithRepository sets the record repository for the service.
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithObjectStore sets the object store used for image uploads.
func WithObjectStore(store ObjectStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithKeyGenerator overrides the storage key generator.
func WithKeyGenerator(g objectkey.Generator) Option {
	return func(s *service) {
		s.keys = g
	}
}

// WithLogger sets the logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *service) {
		s.logger = l
	}
}

// WithRetryBackoff sets the base delay between upload retry attempts.
// Zero disables the delay entirely.
func WithRetryBackoff(d time.Duration) Option {
	return func(s *service) {
		s.retryBackoff = d
	}
}

// New creates a new service instance with the given options. A
// repository is required; an object store is only required once an
// upload is attempted.
func New(options ...Option) (Service, error) {
	s := &service{
		keys:         objectkey.NewTimestampedGenerator(),
		logger:       slog.Default(),
		retryBackoff: 100 * time.Millisecond,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}
