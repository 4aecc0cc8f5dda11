// Package mem holds short-lived single-use tokens in process memory.
package mem

import (
	"sync"
	"time"
)

type ResetTokenStore interface {
	Set(token string, accountEmail string, ttl time.Duration)

	// Consume returns the email stored for token and removes it.
	// Returns "" when the token is missing or expired.
	Consume(token string) string

	// Purge drops expired entries and reports how many were removed.
	Purge() int
}

type entry struct {
	email     string
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *ResetTokens) Set(token string, accountEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// one live token per email
	for k, e := range s.data {
		if e.email == accountEmail {
			delete(s.data, k)
		}
	}
	s.data[token] = entry{
		email:     accountEmail,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.email
}

func (s *ResetTokens) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			n++
		}
	}
	return n
}
