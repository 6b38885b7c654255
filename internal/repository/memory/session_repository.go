package memory

import (
	"sync"
	"time"

	"dawangi-chatbot-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository owns the in-memory conversational state. Sessions
// are created on first reference, never on demand by callers, and an
// unknown id is never an error.
//
// Read-modify-write sequences are serialized per session id; unrelated
// sessions do not block each other. Callers must not hold any session
// lock across an LLM call — every method here returns before the
// provider is invoked, and all returned state is deep-copied.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purging expired sessions every 10
	// minutes. TTL eviction is the only form of garbage collection;
	// sessions are otherwise never destroyed.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *SessionRepository) lockFor(sessionId string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.locks[sessionId]; ok {
		return l
	}
	l := &sync.Mutex{}
	r.locks[sessionId] = l
	return l
}

// getOrCreateLocked returns the live session, creating it if absent.
// Caller must hold the session lock.
func (r *SessionRepository) getOrCreateLocked(sessionId string) *store.Session {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.Session)
	}
	session := &store.Session{
		Id:           sessionId,
		History:      []store.Turn{},
		LastAccessed: time.Now(),
	}
	r.cache.Set(sessionId, session, cache.DefaultExpiration)
	return session
}

// GetOrCreate returns a snapshot of the session, creating it with an
// empty history and profile when the id is unseen.
func (r *SessionRepository) GetOrCreate(sessionId string) *store.Session {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	return snapshot(r.getOrCreateLocked(sessionId))
}

// Touch updates the session's last-accessed time and refreshes its TTL.
func (r *SessionRepository) Touch(sessionId string) {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	session := r.getOrCreateLocked(sessionId)
	session.LastAccessed = time.Now()
	r.cache.Set(sessionId, session, cache.DefaultExpiration)
}

// UpdateProfile overwrites only the non-empty fields, last write wins.
func (r *SessionRepository) UpdateProfile(sessionId, dept, selectedProgram string) {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	session := r.getOrCreateLocked(sessionId)
	if dept != "" {
		session.Profile.Dept = dept
	}
	if selectedProgram != "" {
		session.Profile.SelectedProgram = selectedProgram
	}
	r.cache.Set(sessionId, session, cache.DefaultExpiration)
}

// Profile returns a snapshot of the session profile.
func (r *SessionRepository) Profile(sessionId string) store.Profile {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	return r.getOrCreateLocked(sessionId).Profile
}

// AppendTurns appends one user/assistant pair, then truncates the
// history to the most recent MaxHistoryEntries entries.
func (r *SessionRepository) AppendTurns(sessionId string, userTurn, assistantTurn store.Turn) {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	session := r.getOrCreateLocked(sessionId)
	session.History = append(session.History, userTurn, assistantTurn)
	if len(session.History) > store.MaxHistoryEntries {
		trimmed := make([]store.Turn, store.MaxHistoryEntries)
		copy(trimmed, session.History[len(session.History)-store.MaxHistoryEntries:])
		session.History = trimmed
	}
	r.cache.Set(sessionId, session, cache.DefaultExpiration)
}

// History returns a read-only snapshot of the ordered turn sequence.
// Mutating the returned slice never affects stored state.
func (r *SessionRepository) History(sessionId string) []store.Turn {
	l := r.lockFor(sessionId)
	l.Lock()
	defer l.Unlock()

	session := r.getOrCreateLocked(sessionId)
	history := make([]store.Turn, len(session.History))
	copy(history, session.History)
	return history
}

// Delete removes a session and its lock.
func (r *SessionRepository) Delete(sessionId string) {
	l := r.lockFor(sessionId)
	l.Lock()
	r.cache.Delete(sessionId)
	l.Unlock()

	r.mu.Lock()
	delete(r.locks, sessionId)
	r.mu.Unlock()
}

func snapshot(session *store.Session) *store.Session {
	copied := *session
	copied.History = make([]store.Turn, len(session.History))
	copy(copied.History, session.History)
	return &copied
}
