package repository

import (
	"strings"
	"testing"
)

// Ranges are half-open: booking [06-10, 06-12) then [06-12, 06-14) must
// succeed, while [06-11, 06-13) collides. The strict <= / >= bounds carry
// that property, so they are pinned here along with the active-status guard
// and the self-exclusion used by date-changing updates.
func TestOverlappingQuery(t *testing.T) {
	fragments := []string{
		"NOT (check_out <= $2 OR check_in >= $3)",
		"status IN ('confirmed', 'checked_in')",
		"($4 = '' OR id != $4)",
	}

	for _, fragment := range fragments {
		if !strings.Contains(overlappingQuery, fragment) {
			t.Errorf("overlappingQuery does not contain %q", fragment)
		}
	}
}

// Revenue for a window counts completed and still-booked stays by their
// check-out date; cancelled and in-house stays are excluded.
func TestRevenueStatsQuery(t *testing.T) {
	fragments := []string{
		"check_out BETWEEN $1 AND $2",
		"status IN ('checked_out', 'confirmed')",
		"COUNT(id) AS total_reservations",
		"COALESCE(SUM(total_price), 0) AS total_revenue",
		"COALESCE(AVG(total_price), 0) AS avg_price",
	}

	for _, fragment := range fragments {
		if !strings.Contains(revenueStatsQuery, fragment) {
			t.Errorf("revenueStatsQuery does not contain %q", fragment)
		}
	}
}

func TestMonthlyRevenueQuery(t *testing.T) {
	fragments := []string{
		"status != 'cancelled'",
		"to_char(check_in, 'YYYY-MM')",
	}

	for _, fragment := range fragments {
		if !strings.Contains(monthlyRevenueQuery, fragment) {
			t.Errorf("monthlyRevenueQuery does not contain %q", fragment)
		}
	}
}
