package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"meetsched/models"
)

// ToMinutes converts "HH:MM" wall-clock text to minutes from midnight.
// Hours must be 0-23 and minutes 0-59; anything else is a *FormatError.
func ToMinutes(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Text: text, Reason: "expected HH:MM"}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Text: text, Reason: "hour is not a number"}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Text: text, Reason: "minute is not a number"}
	}
	if hours < 0 || hours > 23 {
		return 0, &FormatError{Text: text, Reason: "hour out of range"}
	}
	if minutes < 0 || minutes > 59 {
		return 0, &FormatError{Text: text, Reason: "minute out of range"}
	}
	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes from midnight as zero-padded "HH:MM".
// Callers only pass values in [0, 1440).
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParsePair converts a ("HH:MM","HH:MM") wire pair to an Interval.
func ParsePair(pair models.TimePair) (models.Interval, error) {
	start, err := ToMinutes(pair[0])
	if err != nil {
		return models.Interval{}, err
	}
	end, err := ToMinutes(pair[1])
	if err != nil {
		return models.Interval{}, err
	}
	return models.Interval{Start: start, End: end}, nil
}

// FormatInterval is the inverse of ParsePair.
func FormatInterval(iv models.Interval) models.TimePair {
	return models.TimePair{FormatMinutes(iv.Start), FormatMinutes(iv.End)}
}
