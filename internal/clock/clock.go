package clock

import "time"

// Clock supplies the current time. Weekday checks use the location of the
// returned time, so System reports the host's local timezone.
type Clock interface {
	Now() time.Time
}

// System reads the machine clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// LocalWeekday returns the current day of the week as seen by the clock.
func LocalWeekday(c Clock) time.Weekday {
	return c.Now().Weekday()
}
