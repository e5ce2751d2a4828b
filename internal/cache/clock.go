package cache

import "time"

// clock abstracts time for expiry checks so tests can control it.
type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
