package workdate

import "storecare-backend/internal/timeutil"

// Resolve maps the current clock reading and a store's shift configuration to
// the calendar date the visit is attributed to.
//
// Day stores always belong to today's date. A night-shift store runs from the
// evening of day D into the morning of D+1: before the nominal end hour the
// staff member is still finishing the session that started the evening
// before, so the visit belongs to yesterday. The comparison is strictly <,
// so a store with WorkEndHour 0 never classifies any hour as "before end".
func Resolve(c timeutil.Clock, isNightShift bool, workStartHour, workEndHour int) string {
	if !isNightShift {
		return timeutil.Today(c)
	}
	if timeutil.CurrentHour(c) < workEndHour {
		return timeutil.Yesterday(c)
	}
	return timeutil.Today(c)
}

// Window returns the deduplicated [resolved, today, yesterday] date set used
// when searching for open attendance records. The resolved date comes from
// the current clock reading, but a record opened near a shift boundary may
// carry the other side's date; checking a single date would miss genuinely
// open sessions.
func Window(c timeutil.Clock, resolved string) []string {
	dates := []string{resolved, timeutil.Today(c), timeutil.Yesterday(c)}
	out := dates[:0]
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
