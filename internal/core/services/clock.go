package services

import "time"

// Clock returns the current instant. Services compare pub dates against it.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
