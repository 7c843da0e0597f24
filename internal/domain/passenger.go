package domain

import "time"

// Passenger represents a rider in the system.
// Passengers are immutable after registration.
type Passenger struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
