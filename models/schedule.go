package models

// TimePair is a ("HH:MM","HH:MM") time span as exchanged on the wire.
// Internal computation always uses Interval; conversion happens at the
// service boundary.
type TimePair [2]string

// UserBusySlots is one user's declared busy periods.
type UserBusySlots struct {
	ID   int        `json:"id"`
	Busy []TimePair `json:"busy"`
}

// SaveSlotsRequest defines the payload for declaring busy slots.
type SaveSlotsRequest struct {
	Users []UserBusySlots `json:"users" binding:"required"`
}

// BookRequest defines the payload for booking a slot.
type BookRequest struct {
	Users []int    `json:"users"`
	Slot  TimePair `json:"slot"`
}

// CalendarResponse holds a user's busy and booked intervals.
type CalendarResponse struct {
	UserID int        `json:"userId"`
	Busy   []TimePair `json:"busy"`
}

// BookingView is a committed booking with its slot rendered as "HH:MM".
type BookingView struct {
	ID    string   `json:"id"`
	Users []int    `json:"users"`
	Slot  TimePair `json:"slot"`
}

// UserOccupancy pairs a user with their occupied intervals (declared busy
// periods plus booked slots).
type UserOccupancy struct {
	UserID    int
	Intervals []Interval
}
