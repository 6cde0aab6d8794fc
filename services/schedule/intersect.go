package schedule

import "meetsched/models"

// Intersect computes the intersection of two interval lists. Both inputs
// must be sorted ascending by start and non-overlapping; the result is too.
// Zero-length overlaps (end == start) are kept.
func Intersect(a, b []models.Interval) []models.Interval {
	result := []models.Interval{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := max(a[i].Start, b[j].Start)
		end := min(a[i].End, b[j].End)
		if end >= start {
			result = append(result, models.Interval{Start: start, End: end})
		}
		// Advance whichever interval ends first; on a tie the second
		// list moves.
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return result
}

// IntersectAll folds Intersect over a sequence of per-user free-interval
// lists. With no lists there is no common availability, so the result is
// empty rather than "all time free".
func IntersectAll(lists [][]models.Interval) []models.Interval {
	if len(lists) == 0 {
		return []models.Interval{}
	}
	common := lists[0]
	for _, next := range lists[1:] {
		common = Intersect(common, next)
	}
	return common
}
