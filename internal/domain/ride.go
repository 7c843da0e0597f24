package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusPending   RideStatus = "pending"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
)

// CanTransitionTo reports whether a ride may move from s to next.
// The lifecycle is strictly one-directional:
//
//	pending ──> accepted ──> completed
//
// completed is terminal; no transition ever regresses or skips a state.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	switch s {
	case RideStatusPending:
		return next == RideStatusAccepted
	case RideStatusAccepted:
		return next == RideStatusCompleted
	default:
		return false
	}
}

// Terminal reports whether s admits no further transitions.
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted
}

// Valid reports whether s is one of the three lifecycle states.
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusPending, RideStatusAccepted, RideStatusCompleted:
		return true
	default:
		return false
	}
}

// Ride represents a single passenger transport request and its
// lifecycle record.
//
// DriverID is empty until the ride is accepted and immutable once set,
// so DriverID != "" holds exactly when Status is accepted or completed.
type Ride struct {
	ID          string
	PassengerID string
	DriverID    string
	Status      RideStatus
	RequestedAt time.Time
	AcceptedAt  time.Time
	CompletedAt time.Time
}
