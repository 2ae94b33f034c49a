package domain

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/pkg/timeutil"
)

// ReservationType distinguishes table bookings from takeaway orders
type ReservationType string

const (
	TypeDineIn   ReservationType = "dine-in"
	TypeTakeaway ReservationType = "takeaway"
)

// Reservation represents a committed booking.
// Reservations are never mutated: cancellation removes them.
type Reservation struct {
	ID           string
	CustomerName string
	ContactInfo  string

	// PartySize is 0 for takeaway and meaningless there
	PartySize int

	// StartTime uses local wall-clock semantics, no timezone normalization
	StartTime       time.Time
	DurationMinutes int

	// TableIDs is empty for takeaway; order is irrelevant
	TableIDs []string

	Notes string
	Type  ReservationType

	CreatedAt time.Time
}

// IsTakeaway returns true for takeaway orders
func (r *Reservation) IsTakeaway() bool {
	return r.Type == TypeTakeaway
}

// OccupiesTable returns true if the reservation holds the given table.
// A takeaway reservation holds no tables and can never conflict.
func (r *Reservation) OccupiesTable(tableID string) bool {
	for _, id := range r.TableIDs {
		if id == tableID {
			return true
		}
	}
	return false
}

// ConflictsWith returns true if the reservation holds any of the given
// tables and its interval overlaps [start, start+durationMinutes)
func (r *Reservation) ConflictsWith(tableIDs []string, start time.Time, durationMinutes int) bool {
	shares := false
	for _, id := range tableIDs {
		if r.OccupiesTable(id) {
			shares = true
			break
		}
	}
	if !shares {
		return false
	}
	return timeutil.Overlaps(r.StartTime, r.DurationMinutes, start, durationMinutes)
}
