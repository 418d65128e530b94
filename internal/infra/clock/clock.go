// Package clock provides the wall-clock implementation of service.Clock.
package clock

import (
	"time"

	"taskman/internal/domain/service"
)

type systemClock struct{}

// New returns a clock backed by time.Now in UTC.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
