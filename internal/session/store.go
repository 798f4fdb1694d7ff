// Package session isolates the user-added fixed expenses of each billing session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mess-bill/internal/billing"
	"mess-bill/internal/domain"
)

type entry struct {
	expenses billing.ExpenseList
	lastSeen time.Time
}

// Store is an in-memory, mutex-guarded set of billing sessions.
// Sessions idle for longer than the TTL are evicted, and at most max sessions
// are open at once.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	max      int
	now      func() time.Time
	sessions map[uuid.UUID]*entry
}

// NewStore creates an empty session store. A non-positive ttl disables expiry
// and a non-positive max disables the cap.
func NewStore(ttl time.Duration, max int) *Store {
	return &Store{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*entry),
	}
}

// Create opens a new session with an empty expense list. Expired sessions are
// evicted first; if the store is still full, ErrTooManySessions is returned.
func (s *Store) Create() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	if s.max > 0 && len(s.sessions) >= s.max {
		return uuid.Nil, domain.ErrTooManySessions
	}

	id := uuid.New()
	s.sessions[id] = &entry{lastSeen: s.now()}
	return id, nil
}

// AddExpense appends an expense to the session. Invalid entries are ignored and
// reported as not added.
func (s *Store) AddExpense(id uuid.UUID, name string, amount float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return false, err
	}
	return e.expenses.Add(name, amount), nil
}

// ClearExpenses empties the session's expense list.
func (s *Store) ClearExpenses(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return err
	}
	e.expenses.Clear()
	return nil
}

// Expenses returns a copy of the session's expenses in insertion order.
func (s *Store) Expenses(id uuid.UUID) ([]domain.FixedExpenseEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return e.expenses.Entries(), nil
}

// Delete ends a session.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of open sessions, expired ones excluded.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	return len(s.sessions)
}

// get returns a live session and refreshes its idle timer. Callers hold mu.
func (s *Store) get(id uuid.UUID) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	e.lastSeen = now
	return e, nil
}

func (s *Store) evictExpired() {
	now := s.now()
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
