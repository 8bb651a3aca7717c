package engine

import "time"

// TimeProvider is the frame loop's source of timestamps
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
