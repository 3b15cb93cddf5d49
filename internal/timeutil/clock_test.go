package timeutil

import (
	"testing"
	"time"
)

func TestTodayUsesKSTNotUTC(t *testing.T) {
	// 2025-06-10 20:00 UTC is already 2025-06-11 05:00 in KST.
	clock := FixedClock{T: time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)}

	if got := Today(clock); got != "2025-06-11" {
		t.Fatalf("Today = %s, want 2025-06-11", got)
	}
	if got := Yesterday(clock); got != "2025-06-10" {
		t.Fatalf("Yesterday = %s, want 2025-06-10", got)
	}
	if got := CurrentHour(clock); got != 5 {
		t.Fatalf("CurrentHour = %d, want 5", got)
	}
}

func TestYesterdayAcrossMonthBoundary(t *testing.T) {
	clock := FixedClock{T: time.Date(2025, 7, 1, 1, 0, 0, 0, KST)}

	if got := Yesterday(clock); got != "2025-06-30" {
		t.Fatalf("Yesterday = %s, want 2025-06-30", got)
	}
}

func TestDateOffset(t *testing.T) {
	clock := FixedClock{T: time.Date(2025, 6, 10, 12, 0, 0, 0, KST)}

	if got := DateOffset(clock, -7); got != "2025-06-03" {
		t.Fatalf("DateOffset(-7) = %s, want 2025-06-03", got)
	}
}
