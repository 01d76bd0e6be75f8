package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// Availability is a weekly slot, e.g. {mon 09:00 17:00}.
type Availability struct {
	Day  string `json:"day"`
	From string `json:"from"`
	To   string `json:"to"`
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DefaultAvailability is assigned at signup when none is supplied.
func DefaultAvailability() []Availability {
	return []Availability{{Day: "mon", From: "09:00", To: "17:00"}}
}

// IsClock reports whether s is a 24-hour HH:MM time.
func IsClock(s string) bool {
	return clockRe.MatchString(s)
}

// SlotError describes the first invalid slot in a list.
type SlotError struct {
	Index  int
	Slot   Availability
	Reason string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("availability[%d] %s", e.Index, e.Reason)
}

// ValidateAvailability checks every slot and returns the first violation.
func ValidateAvailability(slots []Availability) error {
	for i, s := range slots {
		switch {
		case s.Day == "" || s.From == "" || s.To == "":
			return &SlotError{Index: i, Slot: s, Reason: "requires day, from and to"}
		case !IsClock(s.From) || !IsClock(s.To):
			return &SlotError{Index: i, Slot: s, Reason: "times must use 24-hour HH:MM format"}
		}
	}
	return nil
}

// TrimAvailability returns a copy with surrounding whitespace removed.
func TrimAvailability(slots []Availability) []Availability {
	if slots == nil {
		return nil
	}
	out := make([]Availability, len(slots))
	for i, s := range slots {
		out[i] = Availability{
			Day:  strings.TrimSpace(s.Day),
			From: strings.TrimSpace(s.From),
			To:   strings.TrimSpace(s.To),
		}
	}
	return out
}
