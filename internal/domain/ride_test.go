package domain

import "testing"

func TestRideStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from RideStatus
		to   RideStatus
		want bool
	}{
		{"pending to accepted", RideStatusPending, RideStatusAccepted, true},
		{"accepted to completed", RideStatusAccepted, RideStatusCompleted, true},
		{"pending to completed skips accept", RideStatusPending, RideStatusCompleted, false},
		{"pending to pending", RideStatusPending, RideStatusPending, false},
		{"accepted to pending regresses", RideStatusAccepted, RideStatusPending, false},
		{"accepted to accepted", RideStatusAccepted, RideStatusAccepted, false},
		{"completed to anything", RideStatusCompleted, RideStatusAccepted, false},
		{"completed to pending", RideStatusCompleted, RideStatusPending, false},
		{"unknown status", RideStatus("cancelled"), RideStatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRideStatus_Terminal(t *testing.T) {
	t.Parallel()

	if RideStatusPending.Terminal() || RideStatusAccepted.Terminal() {
		t.Error("pending and accepted are not terminal")
	}
	if !RideStatusCompleted.Terminal() {
		t.Error("completed is terminal")
	}
}

func TestRideStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []RideStatus{RideStatusPending, RideStatusAccepted, RideStatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []RideStatus{"", "cancelled", "PENDING"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}
