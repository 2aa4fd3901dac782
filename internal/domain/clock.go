package domain

import "time"

// Clock abstracts time.Now so TTL and staleness checks are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
