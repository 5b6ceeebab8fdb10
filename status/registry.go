package status

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names shared by systems and the status line
const (
	MetricObstaclesDestroyed = "obstacles.destroyed"
	MetricContactsResolved   = "contacts.resolved"
	MetricContactsDuplicate  = "contacts.duplicate"
	MetricEntitiesLive       = "entities.live"
	MetricTicks              = "engine.ticks"
	MetricShipSpeed          = "ship.speed"
	MetricShipHeading        = "ship.heading"
)

// Registry holds the score and named counters/gauges
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Score *Score

	mu     sync.RWMutex
	ints   map[string]*atomic.Int64
	floats map[string]*Gauge
}

// NewRegistry creates an initialized Registry with a zero score
func NewRegistry() *Registry {
	return &Registry{
		Score:  &Score{},
		ints:   make(map[string]*atomic.Int64),
		floats: make(map[string]*Gauge),
	}
}

// Int returns the counter for key, creating it if absent
func (r *Registry) Int(key string) *atomic.Int64 {
	return lookup(&r.mu, r.ints, key)
}

// Float returns the gauge for key, creating it if absent
func (r *Registry) Float(key string) *Gauge {
	return lookup(&r.mu, r.floats, key)
}

func lookup[T any](mu *sync.RWMutex, m map[string]*T, key string) *T {
	mu.RLock()
	ptr, ok := m[key]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := m[key]; ok {
		return ptr
	}
	ptr = new(T)
	m[key] = ptr
	return ptr
}

// RangeInts visits counters in sorted key order
func (r *Registry) RangeInts(fn func(key string, v int64)) {
	r.mu.RLock()
	keys := sortedKeys(r.ints)
	vals := make([]int64, len(keys))
	for i, k := range keys {
		vals[i] = r.ints[k].Load()
	}
	r.mu.RUnlock()

	for i, k := range keys {
		fn(k, vals[i])
	}
}

// RangeFloats visits gauges in sorted key order
func (r *Registry) RangeFloats(fn func(key string, v float64)) {
	r.mu.RLock()
	keys := sortedKeys(r.floats)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = r.floats[k].Get()
	}
	r.mu.RUnlock()

	for i, k := range keys {
		fn(k, vals[i])
	}
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Export registers observable instruments for the score and every metric on meter
// Metrics created after Export are still observed; the callback ranges at collection time
func (r *Registry) Export(m metric.Meter) (metric.Registration, error) {
	credits, err := m.Int64ObservableCounter("skyfarer.credits",
		metric.WithDescription("Credits awarded for bank/collector contacts"))
	if err != nil {
		return nil, fmt.Errorf("credits instrument: %w", err)
	}
	counters, err := m.Int64ObservableGauge("skyfarer.status.int",
		metric.WithDescription("Named integer status metrics"))
	if err != nil {
		return nil, fmt.Errorf("int instrument: %w", err)
	}
	gauges, err := m.Float64ObservableGauge("skyfarer.status.float",
		metric.WithDescription("Named float status metrics"))
	if err != nil {
		return nil, fmt.Errorf("float instrument: %w", err)
	}

	return m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(credits, r.Score.Value())
		r.RangeInts(func(k string, v int64) {
			o.ObserveInt64(counters, v, metric.WithAttributes(attribute.String("name", k)))
		})
		r.RangeFloats(func(k string, v float64) {
			o.ObserveFloat64(gauges, v, metric.WithAttributes(attribute.String("name", k)))
		})
		return nil
	}, credits, counters, gauges)
}
