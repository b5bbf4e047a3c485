// Package trip defines the trip request model and its deterministic
// rendering into a GigaChat itinerary prompt.
package trip

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for trip dates.
	DateLayout = "2006-01-02"

	// MinGuests and MaxGuests bound the adult traveler count.
	MinGuests = 1
	MaxGuests = 10

	// MaxChildren bounds the children list length.
	MaxChildren = 6

	// MaxChildAge is the oldest age still counted as a child.
	MaxChildAge = 17
)

// ValidationError reports a trip parameter that failed its schema constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Request is a validated, immutable set of trip parameters. Construct it with
// New; a Request that went through New never fails prompt rendering.
type Request struct {
	From         string
	To           string
	DateFrom     time.Time
	DateTo       time.Time
	Guests       int
	ChildrenAges []int
}

// New parses and validates raw trip parameters. Dates use DateLayout.
// A nil childrenAges slice is treated as no children.
func New(from, to, dateFrom, dateTo string, guests int, childrenAges []int) (Request, error) {
	if from == "" {
		return Request{}, &ValidationError{Field: "from", Reason: "must not be empty"}
	}
	if to == "" {
		return Request{}, &ValidationError{Field: "to", Reason: "must not be empty"}
	}

	df, err := time.Parse(DateLayout, dateFrom)
	if err != nil {
		return Request{}, &ValidationError{Field: "dateFrom", Reason: "must be a date in format " + DateLayout}
	}
	dt, err := time.Parse(DateLayout, dateTo)
	if err != nil {
		return Request{}, &ValidationError{Field: "dateTo", Reason: "must be a date in format " + DateLayout}
	}
	if dt.Before(df) {
		return Request{}, &ValidationError{Field: "dateTo", Reason: "must not be before dateFrom"}
	}

	if guests < MinGuests || guests > MaxGuests {
		return Request{}, &ValidationError{Field: "guests", Reason: fmt.Sprintf("must be between %d and %d", MinGuests, MaxGuests)}
	}

	if len(childrenAges) > MaxChildren {
		return Request{}, &ValidationError{Field: "childrenAges", Reason: fmt.Sprintf("must list at most %d children", MaxChildren)}
	}
	for _, age := range childrenAges {
		if age < 0 || age > MaxChildAge {
			return Request{}, &ValidationError{Field: "childrenAges", Reason: fmt.Sprintf("ages must be between 0 and %d", MaxChildAge)}
		}
	}

	ages := make([]int, len(childrenAges))
	copy(ages, childrenAges)

	return Request{
		From:         from,
		To:           to,
		DateFrom:     df,
		DateTo:       dt,
		Guests:       guests,
		ChildrenAges: ages,
	}, nil
}

// Days returns the number of calendar days the trip spans, inclusive of both
// endpoints.
func (r Request) Days() int {
	return int(r.DateTo.Sub(r.DateFrom)/(24*time.Hour)) + 1
}
