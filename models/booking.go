package models

// Booking ties a set of user IDs to one committed meeting slot.
// Bookings are append-only: there is no cancellation or update.
type Booking struct {
	ID    string   `json:"id"`
	Users []int    `json:"users"`
	Slot  Interval `json:"slot"`
}

// Names reports whether the booking includes the given user.
func (b Booking) Names(userID int) bool {
	for _, id := range b.Users {
		if id == userID {
			return true
		}
	}
	return false
}
