package service

import "errors"

var (
	// ErrRideNotPending is returned when trying to accept a ride that is
	// no longer pending, including losing an accept race.
	ErrRideNotPending = errors.New("ride not pending")

	// ErrRideNotAccepted is returned when trying to complete a ride that
	// is not in the accepted state.
	ErrRideNotAccepted = errors.New("ride not accepted")

	// ErrDriverMismatch is returned when a driver tries to complete a
	// ride accepted by a different driver.
	ErrDriverMismatch = errors.New("ride accepted by a different driver")

	// ErrDriverUnavailable is returned when the accepting driver already
	// holds an accepted ride.
	ErrDriverUnavailable = errors.New("driver unavailable")

	// ErrInvalidPassengerID is returned when passenger ID is empty.
	ErrInvalidPassengerID = errors.New("invalid passenger id")

	// ErrInvalidDriverID is returned when driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidRideID is returned when ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidName is returned when a registration name is empty.
	ErrInvalidName = errors.New("name is required")
)
