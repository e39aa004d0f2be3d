package repository

import (
	"sync"

	"github.com/google/uuid"

	"monkey-boards/planner"
)

// SessionRepository is the in-memory store for planner sessions. The mutex
// also serializes board mutations: each board behaves as if driven by a
// single-threaded event loop.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*planner.Board
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*planner.Board)}
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// Create registers a board under a fresh session id.
func (r *SessionRepository) Create(board *planner.Board) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.sessions[id] = board
	return id
}

// Update runs fn against the session's board while holding the lock.
// Reports false when the session does not exist.
func (r *SessionRepository) Update(id string, fn func(*planner.Board)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.sessions[id]
	if !ok {
		return false
	}
	fn(board)
	return true
}

// View is Update for read-only callers.
func (r *SessionRepository) View(id string, fn func(*planner.Board)) bool {
	return r.Update(id, fn)
}

// Delete removes a session. Reports whether it existed.
func (r *SessionRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Count returns the number of live sessions.
func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
