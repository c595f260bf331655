package status

import (
	"math"
	"sync/atomic"
)

// Gauge holds the latest observed value and the highest value seen since creation
// Zero value is ready to use; negative observations never raise the peak above zero
type Gauge struct {
	last atomic.Uint64
	peak atomic.Uint64
}

// Set records v as the current value
func (g *Gauge) Set(v float64) {
	g.last.Store(math.Float64bits(v))
	for {
		old := g.peak.Load()
		if v <= math.Float64frombits(old) {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// Get returns the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.last.Load())
}

// Peak returns the highest value recorded
func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}
