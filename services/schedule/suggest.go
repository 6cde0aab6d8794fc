package schedule

import "meetsched/models"

// maxSuggestions caps how many candidate slots a suggestion request returns.
const maxSuggestions = 3

// SuggestSlots cuts fixed-duration candidate slots from the common
// availability list, at most maxSuggestions in total. Intervals are
// consumed in order and the scan stops as soon as the cap is reached, so
// later windows are never drawn from once three candidates exist.
func SuggestSlots(common []models.Interval, duration int) []models.Interval {
	slots := []models.Interval{}
	for _, iv := range common {
		cursor := iv.Start
		for iv.End-cursor >= duration {
			slots = append(slots, models.Interval{Start: cursor, End: cursor + duration})
			cursor += duration
			if len(slots) >= maxSuggestions {
				return slots
			}
		}
	}
	return slots
}
