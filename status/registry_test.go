package status

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[Gauge]()

	a := m.Get("fps")
	b := m.Get("fps")
	assert.Same(t, a, b)
	assert.True(t, m.Has("fps"))
	assert.False(t, m.Has("missing"))
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[Gauge]()
	m.Get("c")
	m.Get("a")
	m.Get("b")

	var names []string
	m.Range(func(name string, _ *Gauge) { names = append(names, name) })
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestGaugeTracksPeak(t *testing.T) {
	var g Gauge
	g.Set(3)
	g.Set(9)
	g.Set(4)

	assert.Equal(t, 4.0, g.Get())
	assert.Equal(t, 9.0, g.Peak())
}

func TestGaugeConcurrentPeak(t *testing.T) {
	var g Gauge
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				g.Set(float64(w*1000 + i))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 7999.0, g.Peak())
}

func TestRegistryValues(t *testing.T) {
	r := NewRegistry()
	r.Counter("events.enemy_killed").Add(3)
	r.Gauge("world.bullets").Set(12)

	assert.Equal(t, 2, r.TotalCount())
	assert.Equal(t, map[string]float64{
		"events.enemy_killed": 3,
		"world.bullets":       12,
	}, r.Values())
}

func TestRegistryLogsAsObject(t *testing.T) {
	r := NewRegistry()
	r.Counter("ticks").Add(7)
	r.Gauge("frame_ms").Set(20)
	r.Gauge("frame_ms").Set(16)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("metrics", r).Msg("done")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	metrics, ok := line["metrics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, metrics["ticks"])
	assert.EqualValues(t, 16, metrics["frame_ms"])
	assert.EqualValues(t, 20, metrics["frame_ms.peak"])
}
