// Package billstore owns the authoritative bill collection and performs
// every lifecycle transition. It holds no I/O; persistence and rendering
// are the caller's concern.
package billstore

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paysprint/billflow/internal/metrics"
	"github.com/paysprint/billflow/internal/models"
)

// Store is the owned, mutable bill collection. Callers only ever receive
// copies of bills; every mutation goes through a named operation that
// appends exactly one activity.
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
	bills map[string]*models.Bill
	order []string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides bill id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates an empty Store. By default ids are UUIDs and the clock is
// time.Now.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		bills: make(map[string]*models.Bill),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads host-supplied initial bills, preserving their ids, statuses,
// and activity logs. Seeding does not append activities.
func (s *Store) Seed(bills []models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range bills {
		bill := bills[i].Clone()
		if bill.ID == "" {
			return fmt.Errorf("seed bill %d: missing id", i)
		}
		if _, exists := s.bills[bill.ID]; exists {
			return fmt.Errorf("seed bill %d: duplicate id %s", i, bill.ID)
		}
		if bill.Amount <= 0 {
			return fmt.Errorf("seed bill %s: amount must be greater than zero", bill.ID)
		}
		if !bill.Status.Valid() {
			return fmt.Errorf("seed bill %s: unknown status %q", bill.ID, bill.Status)
		}
		s.bills[bill.ID] = &bill
		s.order = append(s.order, bill.ID)
	}

	slog.Info("Store seeded", "bills", len(bills))
	return nil
}

// Get returns a snapshot of the bill with the given id.
func (s *Store) Get(id string) (models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bill, err := s.get(id)
	if err != nil {
		return models.Bill{}, err
	}
	return bill.Clone(), nil
}

// List returns snapshots of all bills in insertion order.
func (s *Store) List() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Bill, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.bills[id].Clone())
	}
	return out
}

// Len returns the number of bills in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bills)
}

// Delete removes a bill entirely. No activity is recorded since the
// entity no longer exists.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[id]; !ok {
		return &models.NotFoundError{ID: id}
	}
	delete(s.bills, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	metrics.BillsDeleted.Inc()
	slog.Info("Bill deleted", "bill_id", id)
	return nil
}

// get returns the stored bill for id. Callers must hold the lock.
func (s *Store) get(id string) (*models.Bill, error) {
	bill, ok := s.bills[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}
	return bill, nil
}

// appendActivity records one lifecycle event on a bill. Callers must hold
// the write lock.
func (s *Store) appendActivity(bill *models.Bill, typ models.ActivityType, actor, comment string) {
	bill.Activities = append(bill.Activities, models.Activity{
		Type:    typ,
		User:    actor,
		Date:    s.now(),
		Comment: comment,
	})
}

// startOfDay truncates t to midnight in its own location. All calendar-day
// comparisons go through this so time of day never matters.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
