package models

// Interval represents a time span within a single day, in minutes from
// midnight (e.g., 540 for 09:00).
type Interval struct {
	Start int `json:"start"` // Minutes from midnight
	End   int `json:"end"`   // Minutes from midnight
}

// Overlaps reports whether two intervals share any time. Touching
// boundaries do not count, so back-to-back bookings are allowed.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End <= other.Start || iv.Start >= other.End)
}
