package schedule

import "fmt"

// FormatError reports malformed "HH:MM" time text.
type FormatError struct {
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Text, e.Reason)
}
