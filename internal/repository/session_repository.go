package repository

import (
	"slices"
	"sync"

	"github.com/lshigami/fizzbuzz-game/internal/model"
)

// SessionRepository holds game sessions for the lifetime of the process.
// Sessions are not durable across restarts. All mutation happens under the
// store lock so concurrent submissions against one session cannot lose
// updates; reads get detached snapshots.
type SessionRepository interface {
	Save(session *model.GameSession)
	FindByID(id string) (*model.GameSession, bool)
	Update(id string, fn func(*model.GameSession)) (*model.GameSession, bool)
	FindAll() []*model.GameSession
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.GameSession
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{sessions: make(map[string]*model.GameSession)}
}

func (r *sessionRepository) Save(session *model.GameSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

func (r *sessionRepository) FindByID(id string) (*model.GameSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return snapshot(session), true
}

// Update applies fn to the stored session under the write lock and returns a
// snapshot of the result.
func (r *sessionRepository) Update(id string, fn func(*model.GameSession)) (*model.GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	fn(session)
	return snapshot(session), true
}

func (r *sessionRepository) FindAll() []*model.GameSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*model.GameSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, snapshot(s))
	}
	return all
}

func snapshot(s *model.GameSession) *model.GameSession {
	copied := *s
	copied.Questions = slices.Clone(s.Questions)
	return &copied
}
