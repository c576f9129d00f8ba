package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Service handles the business logic for collections.
type Service struct {
	repo Repository
	mu   sync.RWMutex
	// loads counts successful Load calls, exposed through State.
	loads int
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load opens the managed directory at path.
func (s *Service) Load(ctx context.Context, path string) (*Collection, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrEmptyOrMissingDirectory)
	}
	c, err := s.repo.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	return c, nil
}

// Save persists c through the service's repository.
func (s *Service) Save(ctx context.Context, c *Collection) error {
	if c == nil {
		return errors.New("collection cannot be nil")
	}
	return s.repo.Save(ctx, c)
}

// Inspect returns the collection exactly as its sidecar describes it.
// Use it with Status to report drift before Load reconciles it away.
func (s *Service) Inspect(ctx context.Context, path string) (*Collection, error) {
	in, ok := s.repo.(Inspector)
	if !ok {
		return nil, errors.New("repository does not support inspection")
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrEmptyOrMissingDirectory)
	}
	return in.Inspect(ctx, path)
}

// Status compares the collection with its directory without modifying either.
func (s *Service) Status(ctx context.Context, c *Collection) (Report, error) {
	sc, ok := s.repo.(Scanner)
	if !ok {
		return Report{}, errors.New("repository does not support scanning")
	}
	files, err := sc.Scan(ctx, c.WorkDirectory())
	if err != nil {
		return Report{}, err
	}
	return Diff(c.images, files), nil
}

// Watch observes a managed directory if the repository supports it.
func (s *Service) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, dir)
}

// Repository returns the underlying repository.
func (s *Service) Repository() Repository {
	return s.repo
}
