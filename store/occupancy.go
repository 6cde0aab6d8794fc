package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"meetsched/models"
)

// ConflictError reports the first user whose existing occupancy overlaps a
// requested booking slot.
type ConflictError struct {
	UserID int
	Busy   models.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("user %d has a conflict with [%02d:%02d, %02d:%02d]",
		e.UserID, e.Busy.Start/60, e.Busy.Start%60, e.Busy.End/60, e.Busy.End%60)
}

// OccupancyStore is the source of truth for declared busy periods and
// committed bookings.
type OccupancyStore interface {
	SetBusy(userID int, busy []models.Interval)
	OccupancyOf(userID int) []models.Interval
	Occupancies() []models.UserOccupancy
	TryBook(users []int, slot models.Interval) (models.Booking, error)
	Bookings() []models.Booking
}

// InMemoryOccupancyStore keeps all state in process memory behind a single
// lock. Booking validation and commit run in one critical section, so two
// overlapping booking requests can never both pass the conflict check.
type InMemoryOccupancyStore struct {
	mu       sync.RWMutex
	busy     map[int][]models.Interval
	bookings []models.Booking
}

// NewInMemoryOccupancyStore returns an empty store.
func NewInMemoryOccupancyStore() *InMemoryOccupancyStore {
	return &InMemoryOccupancyStore{busy: make(map[int][]models.Interval)}
}

// SetBusy replaces the user's declared busy periods wholesale. Existing
// bookings are not revalidated against the new schedule.
func (s *InMemoryOccupancyStore) SetBusy(userID int, busy []models.Interval) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy[userID] = append([]models.Interval(nil), busy...)
}

// occupancyOfLocked returns busy plus booked for one user. Callers hold s.mu.
func (s *InMemoryOccupancyStore) occupancyOfLocked(userID int) []models.Interval {
	occ := append([]models.Interval(nil), s.busy[userID]...)
	for _, b := range s.bookings {
		if b.Names(userID) {
			occ = append(occ, b.Slot)
		}
	}
	return occ
}

// OccupancyOf returns the user's busy intervals plus the slot of every
// booking that names them. A user with no declared schedule is fully free.
func (s *InMemoryOccupancyStore) OccupancyOf(userID int) []models.Interval {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.occupancyOfLocked(userID)
}

// Occupancies returns every registered user's occupancy in one consistent
// snapshot, ordered by user ID.
func (s *InMemoryOccupancyStore) Occupancies() []models.UserOccupancy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.busy))
	for id := range s.busy {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]models.UserOccupancy, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.UserOccupancy{UserID: id, Intervals: s.occupancyOfLocked(id)})
	}
	return out
}

// TryBook validates the slot against every named user's occupancy and
// commits it only if nobody conflicts. Users are checked in the supplied
// order and the first conflict aborts with a *ConflictError, leaving the
// booking list untouched.
func (s *InMemoryOccupancyStore) TryBook(users []int, slot models.Interval) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, userID := range users {
		for _, occupied := range s.occupancyOfLocked(userID) {
			if slot.Overlaps(occupied) {
				return models.Booking{}, &ConflictError{UserID: userID, Busy: occupied}
			}
		}
	}

	booking := models.Booking{
		ID:    uuid.New().String(),
		Users: append([]int(nil), users...),
		Slot:  slot,
	}
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

// Bookings returns a snapshot of the committed bookings in commit order.
func (s *InMemoryOccupancyStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings...)
}
