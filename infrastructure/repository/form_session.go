package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/business-overview-api/internal/domain"
)

var (
	ErrFormSessionNotFound      = errors.New("form session not found")
	ErrFormSessionAlreadyExists = errors.New("form session already exists")
)

//go:generate mockgen -source=form_session.go -destination=mocks/mock_form_session.go -package=mocks
type FormSessionRepository interface {
	Create(session *domain.FormSession) error
	Get(sessionID string) (*domain.FormSession, error)
	Update(sessionID string, fn func(session *domain.FormSession) error) (*domain.FormSession, error)
	Delete(sessionID string) error
	DeleteIdleSince(cutoff time.Time) (int, error)
	Count() int
}

// formSessionRepository mantém as sessões apenas em memória.
// Sessões são independentes, mas as escritas passam pelo mesmo lock.
type formSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.FormSession
	now      func() time.Time
}

func NewFormSessionRepository() FormSessionRepository {
	return &formSessionRepository{
		sessions: make(map[string]*domain.FormSession),
		now:      time.Now,
	}
}

func (r *formSessionRepository) Create(session *domain.FormSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return ErrFormSessionAlreadyExists
	}

	now := r.now()
	stored := copySession(session)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.sessions[session.ID] = stored

	session.CreatedAt = now
	session.UpdatedAt = now
	return nil
}

func (r *formSessionRepository) Get(sessionID string) (*domain.FormSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[sessionID]
	if !exists {
		return nil, ErrFormSessionNotFound
	}

	return copySession(session), nil
}

// Update aplica fn sobre uma cópia da sessão e só grava se fn não retornar erro
func (r *formSessionRepository) Update(sessionID string, fn func(session *domain.FormSession) error) (*domain.FormSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.sessions[sessionID]
	if !exists {
		return nil, ErrFormSessionNotFound
	}

	working := copySession(current)
	if err := fn(working); err != nil {
		return nil, err
	}

	working.ID = current.ID
	working.CreatedAt = current.CreatedAt
	working.UpdatedAt = r.now()
	r.sessions[sessionID] = working

	return copySession(working), nil
}

func (r *formSessionRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[sessionID]; !exists {
		return ErrFormSessionNotFound
	}

	delete(r.sessions, sessionID)
	return nil
}

func (r *formSessionRepository) DeleteIdleSince(cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed, nil
}

func (r *formSessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func copySession(session *domain.FormSession) *domain.FormSession {
	out := *session
	out.Snapshot = session.Snapshot.Clone()
	if session.LastSubmittedAt != nil {
		submittedAt := *session.LastSubmittedAt
		out.LastSubmittedAt = &submittedAt
	}
	return &out
}
