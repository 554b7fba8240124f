// Package memory provides an in-memory object store for tests and
// development.
package memory

import (
	"context"
	"sync"
)

type object struct {
	data        []byte
	contentType string
}

// Store is an in-memory implementation of the mediabackend.ObjectStore
// interface. FailPuts makes the next N Put calls fail, for exercising
// retry behavior.
type Store struct {
	mu       sync.RWMutex
	objects  map[string]object
	putCalls int
	failPuts int
	failErr  error
}

// New creates a new in-memory object store.
func New() *Store {
	return &Store{objects: make(map[string]object)}
}

// FailPuts makes the next n Put calls return err before storing
// anything.
func (s *Store) FailPuts(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPuts = n
	s.failErr = err
}

// PutCalls reports how many Put calls were made, including failed ones.
func (s *Store) PutCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.putCalls
}

// Put stores body under key.
func (s *Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putCalls++
	if s.failPuts > 0 {
		s.failPuts--
		return s.failErr
	}

	data := make([]byte, len(body))
	copy(data, body)
	s.objects[key] = object{data: data, contentType: contentType}
	return nil
}

// PublicURL returns a synthetic URL for key.
func (s *Store) PublicURL(key string) string {
	return "memory://" + key
}

// Object returns the stored bytes and content type for key.
func (s *Store) Object(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objects[key]
	if !ok {
		return nil, "", false
	}
	return o.data, o.contentType, true
}

// Len reports the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
