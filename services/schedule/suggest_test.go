package schedule

import (
	"reflect"
	"testing"

	"meetsched/models"
)

func TestSuggestSlots_CapAndDuration(t *testing.T) {
	common := []models.Interval{{Start: 540, End: 1080}}
	slots := SuggestSlots(common, 30)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot.End-slot.Start != 30 {
			t.Fatalf("expected 30-minute slot, got %v", slot)
		}
	}
	want := []models.Interval{{Start: 540, End: 570}, {Start: 570, End: 600}, {Start: 600, End: 630}}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestSuggestSlots_ContainedInInputIntervals(t *testing.T) {
	common := []models.Interval{{Start: 540, End: 590}, {Start: 700, End: 800}}
	slots := SuggestSlots(common, 45)
	for _, slot := range slots {
		contained := false
		for _, iv := range common {
			if slot.Start >= iv.Start && slot.End <= iv.End {
				contained = true
				break
			}
		}
		if !contained {
			t.Fatalf("slot %v not contained in any input interval", slot)
		}
	}
}

func TestSuggestSlots_EarlyExitStaysInFirstWindow(t *testing.T) {
	// The first window fits three 20-minute slots, so the second window
	// must never be consumed.
	common := []models.Interval{{Start: 540, End: 600}, {Start: 900, End: 1080}}
	slots := SuggestSlots(common, 20)
	want := []models.Interval{{Start: 540, End: 560}, {Start: 560, End: 580}, {Start: 580, End: 600}}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestSuggestSlots_SpillsIntoLaterWindows(t *testing.T) {
	common := []models.Interval{{Start: 540, End: 600}, {Start: 720, End: 780}}
	slots := SuggestSlots(common, 40)
	want := []models.Interval{{Start: 540, End: 580}, {Start: 720, End: 760}}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestSuggestSlots_NothingFits(t *testing.T) {
	common := []models.Interval{{Start: 540, End: 560}}
	slots := SuggestSlots(common, 30)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}
