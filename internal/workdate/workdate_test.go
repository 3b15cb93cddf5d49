package workdate

import (
	"testing"
	"time"

	"storecare-backend/internal/timeutil"
)

func clockAt(hour int) timeutil.FixedClock {
	return timeutil.FixedClock{T: time.Date(2025, 6, 10, hour, 30, 0, 0, timeutil.KST)}
}

func TestResolveDayStoreAlwaysToday(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		got := Resolve(clockAt(hour), false, 9, 18)
		if got != "2025-06-10" {
			t.Fatalf("hour %d: Resolve = %s, want 2025-06-10", hour, got)
		}
	}
}

func TestResolveNightStore(t *testing.T) {
	tests := []struct {
		name        string
		currentHour int
		endHour     int
		want        string
	}{
		{"after midnight before shift end", 3, 6, "2025-06-09"},
		{"evening before midnight", 23, 6, "2025-06-10"},
		{"exactly at shift end is today", 6, 6, "2025-06-10"},
		{"midday", 12, 6, "2025-06-10"},
		{"end hour zero never matches hour zero", 0, 0, "2025-06-10"},
		{"hour zero before end six", 0, 6, "2025-06-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(clockAt(tt.currentHour), true, 22, tt.endHour)
			if got != tt.want {
				t.Fatalf("Resolve(night, 22, hour=%d, end=%d) = %s, want %s",
					tt.currentHour, tt.endHour, got, tt.want)
			}
		})
	}
}

func TestWindowContainsResolvedTodayYesterday(t *testing.T) {
	clock := clockAt(3)
	resolved := Resolve(clock, true, 22, 6) // yesterday

	window := Window(clock, resolved)
	want := []string{"2025-06-09", "2025-06-10"}
	if len(window) != len(want) {
		t.Fatalf("Window = %v, want %v", window, want)
	}
	for i := range want {
		if window[i] != want[i] {
			t.Fatalf("Window = %v, want %v", window, want)
		}
	}
}

func TestWindowDeduplicates(t *testing.T) {
	clock := clockAt(12)

	window := Window(clock, "2025-06-10")
	if len(window) != 2 {
		t.Fatalf("Window = %v, want [resolved/today, yesterday] with no duplicates", window)
	}
	if window[0] != "2025-06-10" || window[1] != "2025-06-09" {
		t.Fatalf("Window = %v, want [2025-06-10 2025-06-09]", window)
	}
}
