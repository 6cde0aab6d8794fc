package store

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"meetsched/models"
)

func TestOccupancyOf_UnknownUserIsFree(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	if occ := s.OccupancyOf(42); len(occ) != 0 {
		t.Fatalf("expected empty occupancy for unknown user, got %v", occ)
	}
}

func TestSetBusy_ReplacesWholesale(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, []models.Interval{{Start: 540, End: 600}, {Start: 840, End: 900}})
	s.SetBusy(1, []models.Interval{{Start: 660, End: 720}})

	want := []models.Interval{{Start: 660, End: 720}}
	if got := s.OccupancyOf(1); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOccupancyOf_IncludesBookedSlots(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, []models.Interval{{Start: 540, End: 600}})
	if _, err := s.TryBook([]int{1, 2}, models.Interval{Start: 600, End: 630}); err != nil {
		t.Fatalf("TryBook failed: %v", err)
	}

	want := []models.Interval{{Start: 540, End: 600}, {Start: 600, End: 630}}
	if got := s.OccupancyOf(1); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// User 2 never declared busy slots but is named by the booking.
	want2 := []models.Interval{{Start: 600, End: 630}}
	if got := s.OccupancyOf(2); !reflect.DeepEqual(got, want2) {
		t.Fatalf("expected %v, got %v", want2, got)
	}
}

func TestTryBook_ConflictLeavesBookingsUnchanged(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, []models.Interval{{Start: 540, End: 600}})
	s.SetBusy(2, nil)

	before := s.Bookings()
	_, err := s.TryBook([]int{2, 1}, models.Interval{Start: 570, End: 630})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if conflict.UserID != 1 {
		t.Fatalf("expected conflict for user 1, got user %d", conflict.UserID)
	}
	if after := s.Bookings(); !reflect.DeepEqual(before, after) {
		t.Fatalf("booking list changed on conflict: %v vs %v", before, after)
	}
}

func TestTryBook_FirstConflictInUserOrderWins(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, []models.Interval{{Start: 540, End: 600}})
	s.SetBusy(2, []models.Interval{{Start: 540, End: 600}})

	_, err := s.TryBook([]int{2, 1}, models.Interval{Start: 550, End: 560})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if conflict.UserID != 2 {
		t.Fatalf("expected first supplied user (2) to be reported, got %d", conflict.UserID)
	}
}

func TestTryBook_SuccessAppendsExactlyOne(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, []models.Interval{{Start: 540, End: 600}})

	booking, err := s.TryBook([]int{1}, models.Interval{Start: 600, End: 630})
	if err != nil {
		t.Fatalf("TryBook failed: %v", err)
	}
	if booking.ID == "" {
		t.Fatal("expected booking ID to be set")
	}
	bookings := s.Bookings()
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	if !reflect.DeepEqual(bookings[0], booking) {
		t.Fatalf("stored booking differs: %v vs %v", bookings[0], booking)
	}
}

func TestTryBook_ConcurrentOverlappingRequests(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(1, nil)

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.TryBook([]int{1}, models.Interval{Start: 600, End: 630})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one booking to win, got %d", succeeded)
	}
	if n := len(s.Bookings()); n != 1 {
		t.Fatalf("expected 1 committed booking, got %d", n)
	}
}

func TestOccupancies_SortedByUserID(t *testing.T) {
	s := NewInMemoryOccupancyStore()
	s.SetBusy(7, []models.Interval{{Start: 540, End: 600}})
	s.SetBusy(3, nil)
	s.SetBusy(5, nil)

	occ := s.Occupancies()
	if len(occ) != 3 {
		t.Fatalf("expected 3 users, got %d", len(occ))
	}
	for i, want := range []int{3, 5, 7} {
		if occ[i].UserID != want {
			t.Fatalf("expected user %d at index %d, got %d", want, i, occ[i].UserID)
		}
	}
}
