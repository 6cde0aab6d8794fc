package schedule

import (
	"sort"

	"meetsched/models"
)

// FreeSlots returns the portions of the working-day window not covered by
// any busy interval, sorted ascending and disjoint. Busy input may be
// unsorted and overlapping. It must already lie within the window; callers
// that cannot guarantee that clip upstream.
func FreeSlots(busy []models.Interval, window models.Interval) []models.Interval {
	sorted := make([]models.Interval, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	free := []models.Interval{}
	cursor := window.Start
	for _, iv := range sorted {
		if iv.Start > cursor {
			free = append(free, models.Interval{Start: cursor, End: iv.Start})
		}
		// The cursor tracks the rightmost covered point seen so far,
		// which absorbs overlapping and nested busy intervals without
		// a separate merge pass.
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < window.End {
		free = append(free, models.Interval{Start: cursor, End: window.End})
	}
	return free
}
