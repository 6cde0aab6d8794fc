// File: meetsched/services/schedule/service.go
package schedule

import (
	"fmt"

	"meetsched/models"
	"meetsched/store"
)

// SchedulerService defines the in-process API the transport layer calls.
type SchedulerService interface {
	SetBusySlots(users []models.UserBusySlots) error
	Suggest(duration int) ([]models.TimePair, error)
	Book(users []int, slot models.TimePair) (models.Booking, error)
	Calendar(userID int) []models.TimePair
	Bookings() []models.BookingView
}

// DefaultSchedulerService is a concrete implementation backed by an
// OccupancyStore and a fixed working-day window.
type DefaultSchedulerService struct {
	Store  store.OccupancyStore
	Window models.Interval
}

// SetBusySlots replaces each listed user's busy schedule. The whole payload
// is parsed before any schedule is written, so a malformed time leaves the
// store exactly as it was.
func (s *DefaultSchedulerService) SetBusySlots(users []models.UserBusySlots) error {
	parsed := make([]models.UserOccupancy, 0, len(users))
	for _, u := range users {
		intervals := make([]models.Interval, 0, len(u.Busy))
		for _, pair := range u.Busy {
			iv, err := ParsePair(pair)
			if err != nil {
				return err
			}
			intervals = append(intervals, iv)
		}
		parsed = append(parsed, models.UserOccupancy{UserID: u.ID, Intervals: intervals})
	}
	for _, p := range parsed {
		s.Store.SetBusy(p.UserID, p.Intervals)
	}
	return nil
}

// Suggest computes up to three candidate slots of the requested duration
// from the common free time of every registered user. No registered users
// means no common availability.
func (s *DefaultSchedulerService) Suggest(duration int) ([]models.TimePair, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", duration)
	}
	occupancies := s.Store.Occupancies()
	lists := make([][]models.Interval, 0, len(occupancies))
	for _, occ := range occupancies {
		lists = append(lists, FreeSlots(occ.Intervals, s.Window))
	}
	common := IntersectAll(lists)
	return formatIntervals(SuggestSlots(common, duration)), nil
}

// Book validates the requested slot against every named user and commits it
// atomically. The first conflicting user aborts the whole request with a
// *store.ConflictError; malformed slot text fails with a *FormatError
// before the store is touched.
func (s *DefaultSchedulerService) Book(users []int, slot models.TimePair) (models.Booking, error) {
	iv, err := ParsePair(slot)
	if err != nil {
		return models.Booking{}, err
	}
	return s.Store.TryBook(users, iv)
}

// Calendar returns the user's busy intervals plus every slot booked in
// their name. Unknown users have an empty calendar, not an error.
func (s *DefaultSchedulerService) Calendar(userID int) []models.TimePair {
	return formatIntervals(s.Store.OccupancyOf(userID))
}

// Bookings lists every committed booking in commit order.
func (s *DefaultSchedulerService) Bookings() []models.BookingView {
	committed := s.Store.Bookings()
	views := make([]models.BookingView, 0, len(committed))
	for _, b := range committed {
		views = append(views, ViewOf(b))
	}
	return views
}

// ViewOf renders a booking with its slot as wire "HH:MM" pairs.
func ViewOf(b models.Booking) models.BookingView {
	return models.BookingView{ID: b.ID, Users: b.Users, Slot: FormatInterval(b.Slot)}
}

func formatIntervals(intervals []models.Interval) []models.TimePair {
	pairs := make([]models.TimePair, 0, len(intervals))
	for _, iv := range intervals {
		pairs = append(pairs, FormatInterval(iv))
	}
	return pairs
}
