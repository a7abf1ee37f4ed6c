package session

import (
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	rnd      *rand.Rand
	log      logrus.FieldLogger
}

func NewStore(rnd *rand.Rand, log logrus.FieldLogger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		rnd:      rnd,
		log:      log,
	}
}

func newID() (string, error) {
	b := make([]byte, 16)
	if _, err := crand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Create starts a classic game under a fresh id.
func (s *Store) Create() (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// each session owns a generator seeded from the store's
	rnd := rand.New(rand.NewPCG(s.rnd.Uint64(), s.rnd.Uint64()))
	sess := NewClassic(id, rnd, s.log)
	s.sessions[sess.ID()] = sess
	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Deletes id from store without checking if it existed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions not seen since before cutoff and reports how many.
func (s *Store) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.WithField("count", n).Debug("swept idle sessions")
	}
	return n
}
