package timeutil

import "time"

// KST is the fixed reference timezone (UTC+9) for all work-date math.
// Work dates must never depend on the host's local timezone, otherwise the
// same clock-in would land on different dates on differently configured
// servers.
var KST = time.FixedZone("KST", 9*60*60)

const DateLayout = "2006-01-02"

// Clock is the single injectable "now" source. Production code uses
// SystemClock; tests pin time with FixedClock instead of mocking a global.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }

// Today returns the current calendar date in KST as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().In(KST).Format(DateLayout)
}

// Yesterday returns the previous calendar date in KST as YYYY-MM-DD.
func Yesterday(c Clock) string {
	return c.Now().In(KST).AddDate(0, 0, -1).Format(DateLayout)
}

// CurrentHour returns the hour of day [0,23] in KST.
func CurrentHour(c Clock) int {
	return c.Now().In(KST).Hour()
}

// DateOffset returns the KST date shifted by the given number of days.
func DateOffset(c Clock, days int) string {
	return c.Now().In(KST).AddDate(0, 0, days).Format(DateLayout)
}
