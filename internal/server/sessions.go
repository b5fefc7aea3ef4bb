package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// sessionStore keeps one live screen per (session, screen id). When full it
// evicts the least recently used session.
type sessionStore struct {
	mu       sync.Mutex
	max      int
	sessions map[string]*session
	now      func() time.Time
	onEvict  func()
}

type session struct {
	screens  map[string]*screen.Screen
	lastUsed time.Time
}

func newSessionStore(max int) *sessionStore {
	if max < 1 {
		max = 1
	}
	return &sessionStore{
		max:      max,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// ensure returns id when it names a live session, otherwise a new session id.
func (s *sessionStore) ensure(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok && id != "" {
		s.sessions[id].lastUsed = s.now()
		return id, false
	}
	if len(s.sessions) >= s.max {
		s.evictOldest()
	}
	id = uuid.NewString()
	s.sessions[id] = &session{screens: make(map[string]*screen.Screen), lastUsed: s.now()}
	return id, true
}

// screen returns the session's live screen, building it on first use.
func (s *sessionStore) screen(sessionID, screenID string, build func() (*screen.Screen, error)) (*screen.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return build()
	}
	sess.lastUsed = s.now()
	if live, ok := sess.screens[screenID]; ok {
		return live, nil
	}
	live, err := build()
	if err != nil {
		return nil, err
	}
	sess.screens[screenID] = live
	return live, nil
}

// reset drops one screen's state from a session.
func (s *sessionStore) reset(sessionID, screenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		delete(sess.screens, screenID)
	}
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastUsed.Before(oldest) {
			oldestID, oldest = id, sess.lastUsed
		}
	}
	if oldestID == "" {
		return
	}
	delete(s.sessions, oldestID)
	if s.onEvict != nil {
		s.onEvict()
	}
}
