package repository

import (
	"strings"
	"testing"
)

// The availability query decides what the desk can sell; its predicate shape
// is load-bearing and must not drift. Only rooms in status available are
// offered, only active reservations block them, and ranges are half-open so
// touching stays do not collide.
func TestAvailableQuery(t *testing.T) {
	fragments := []string{
		"status = 'available'",
		"r.status IN ('confirmed', 'checked_in')",
		"r.check_out <= $1",
		"r.check_in >= $2",
		"ORDER BY floor, room_number",
	}

	for _, fragment := range fragments {
		if !strings.Contains(availableQuery, fragment) {
			t.Errorf("availableQuery does not contain %q", fragment)
		}
	}
}
