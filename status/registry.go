package status

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Registry holds run telemetry: monotonic counters and gauges with a peak
// Writers cache pointers from Counter and Gauge; readers may run on another goroutine
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge returns the named gauge
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// Values flattens the registry into name/value pairs
func (r *Registry) Values() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Counters.Range(func(name string, c *atomic.Int64) {
		out[name] = float64(c.Load())
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		out[name] = g.Get()
	})
	return out
}

// MarshalZerologObject writes every metric as a field, so a registry can be logged with Object
func (r *Registry) MarshalZerologObject(e *zerolog.Event) {
	r.Counters.Range(func(name string, c *atomic.Int64) {
		e.Int64(name, c.Load())
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		e.Float64(name, g.Get())
		e.Float64(name+".peak", g.Peak())
	})
}
