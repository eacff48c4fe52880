package services

import "time"

// Clock supplies the current time to services. Timestamps are UTC with
// millisecond precision, the finest the mysql datetime(3) columns keep.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func orSystemClock(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}
