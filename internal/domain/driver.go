package domain

// Driver represents a driver in the system.
//
// Available is false exactly while the driver holds a ride in the
// accepted state. Only the dispatch service flips it, always in the
// same transaction as the ride status change.
type Driver struct {
	ID        string
	Name      string
	Available bool
}
