package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// nonceStore tracks SIWE nonces until they are redeemed or expire.
type nonceStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

func newNonceStore(ttl time.Duration) *nonceStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &nonceStore{
		expires: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *nonceStore) Issue() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	nonce := hex.EncodeToString(buf[:])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.expires[nonce] = s.now().Add(s.ttl)
	return nonce, nil
}

// Has reports whether nonce is outstanding.
func (s *nonceStore) Has(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	_, ok := s.expires[nonce]
	return ok
}

// Take redeems nonce. Only the first caller for a live nonce gets true.
func (s *nonceStore) Take(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	if _, ok := s.expires[nonce]; !ok {
		return false
	}
	delete(s.expires, nonce)
	return true
}

func (s *nonceStore) pruneLocked() {
	now := s.now()
	for nonce, exp := range s.expires {
		if now.After(exp) {
			delete(s.expires, nonce)
		}
	}
}
