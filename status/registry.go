// Package status is a small metrics registry shared by the simulation and the status bar
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups metric maps by value kind
// Writers cache cell pointers at construction and store into them every frame
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot renders every metric as "key=value" in a stable order: ints, floats, strings
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, 8)
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.0f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}
