package repository

import (
	"context"
	"sync"

	"github.com/umalmyha/poscustomers/internal/model"
)

// SessionRepository represents behavior of session repository, it holds zero or one live session
type SessionRepository interface {
	Current(context.Context) (*model.Session, error)
	Replace(context.Context, *model.Session) error
	Clear(context.Context) error
}

type memorySessionRepository struct {
	mu      sync.RWMutex
	session *model.Session
}

// NewMemorySessionRepository builds new in-memory session repository
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (r *memorySessionRepository) Current(_ context.Context) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, nil
	}
	s := *r.session
	return &s, nil
}

func (r *memorySessionRepository) Replace(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.session = &cp
	return nil
}

func (r *memorySessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil
	return nil
}
