package models

import "testing"

func TestIsValidSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		if !IsValidSlot(slot) {
			t.Errorf("IsValidSlot(%q) = false", slot)
		}
	}
	for _, bad := range []string{"07:00", "19:00", "10:30", ""} {
		if IsValidSlot(bad) {
			t.Errorf("IsValidSlot(%q) = true", bad)
		}
	}
}

func TestHoldsSlot(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}
	for _, tt := range tests {
		if got := HoldsSlot(tt.status); got != tt.want {
			t.Errorf("HoldsSlot(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
