package signup

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/hoaxify/internal/registration"
)

// DefaultSessionTTL is how long an untouched form session is kept.
const DefaultSessionTTL = 30 * time.Minute

// formSession pairs one browser form with its controller.
type formSession struct {
	controller *registration.Controller
	lastSeen   time.Time
}

// formStore is a thread-safe in-memory store of form sessions with idle
// expiry. Sessions with a submission in flight never expire.
type formStore struct {
	mu       sync.Mutex
	sessions map[string]*formSession
	ttl      time.Duration
	now      func() time.Time
}

func newFormStore(ttl time.Duration) *formStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &formStore{
		sessions: make(map[string]*formSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// create stores a fresh controller and returns its session id.
func (s *formStore) create(registrar registration.Registrar) (string, *registration.Controller) {
	id := uuid.NewString()
	controller := registration.NewController(registrar)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[id] = &formSession{controller: controller, lastSeen: s.now()}
	return id, controller
}

// get returns the controller for id and refreshes its idle timer.
func (s *formStore) get(id string) (*registration.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expiredLocked(sess) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.controller, true
}

// delete removes a session by id.
func (s *formStore) delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// len reports the number of stored sessions, expired ones included.
func (s *formStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *formStore) sweepLocked() {
	for id, sess := range s.sessions {
		if s.expiredLocked(sess) {
			delete(s.sessions, id)
		}
	}
}

func (s *formStore) expiredLocked(sess *formSession) bool {
	if sess.controller.Snapshot().State == registration.StatePending {
		return false
	}
	return s.now().Sub(sess.lastSeen) > s.ttl
}
