package http

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"voicetask/internal/transcript"
)

const (
	maxOpenSessions = 256
	sessionTTL      = 5 * time.Minute
)

// captureSession is one in-flight dictation. The mutex serializes deltas
// arriving out of band from the same device.
type captureSession struct {
	mu  sync.Mutex
	acc *transcript.Accumulator
}

// sessionStore tracks open dictation sessions. Abandoned sessions expire
// from the LRU instead of leaking.
type sessionStore struct {
	sessions *expirable.LRU[string, *captureSession]
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: expirable.NewLRU[string, *captureSession](maxOpenSessions, nil, sessionTTL),
	}
}

// open starts a new session and returns its ID.
func (s *sessionStore) open() string {
	id := uuid.NewString()
	s.sessions.Add(id, &captureSession{acc: transcript.NewAccumulator()})
	return id
}

// applyDelta feeds one speech-to-text partial into a session.
func (s *sessionStore) applyDelta(id, delta string) (string, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return "", errSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.acc.ApplyDelta(delta); err != nil {
		return "", err
	}
	return sess.acc.Text(), nil
}

// finalize closes a session and returns the full transcript.
func (s *sessionStore) finalize(id string) (string, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return "", errSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	text, err := sess.acc.Finalize()
	if err != nil {
		return "", err
	}
	s.sessions.Remove(id)
	return text, nil
}

// abort discards a session.
func (s *sessionStore) abort(id string) error {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return errSessionNotFound
	}
	sess.mu.Lock()
	sess.acc.Abort()
	sess.mu.Unlock()
	s.sessions.Remove(id)
	return nil
}
