package logger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type opCounters struct {
	total     atomic.Int64
	failed    atomic.Int64
	latencyNs atomic.Int64
}

type Metrics struct {
	mu  sync.Mutex
	ops map[string]*opCounters
}

var globalMetrics = &Metrics{ops: make(map[string]*opCounters)}

type OperationStats struct {
	Total        int64
	Failed       int64
	AvgLatencyMs float64
}

func (m *Metrics) counters(operation string) *opCounters {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.ops[operation]
	if !ok {
		c = &opCounters{}
		m.ops[operation] = c
	}
	return c
}

func RecordOperation(operation string, err error, duration time.Duration) {
	c := globalMetrics.counters(operation)
	c.total.Add(1)
	c.latencyNs.Add(duration.Nanoseconds())
	if err != nil {
		c.failed.Add(1)
	}
}

func GetMetrics() map[string]OperationStats {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()

	result := make(map[string]OperationStats, len(globalMetrics.ops))
	for op, c := range globalMetrics.ops {
		stats := OperationStats{
			Total:  c.total.Load(),
			Failed: c.failed.Load(),
		}
		if stats.Total > 0 {
			stats.AvgLatencyMs = float64(c.latencyNs.Load()) / float64(stats.Total) / 1e6
		}
		result[op] = stats
	}
	return result
}

func TimedOperation(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	log := FromContext(ctx).With("operation", operation)
	log.Debug("starting operation")

	err := fn()
	duration := time.Since(start)

	RecordOperation(operation, err, duration)

	if err != nil {
		log.Error("operation failed", "error", err, "duration", duration)
	} else {
		log.Debug("operation completed", "duration", duration)
	}

	return err
}

func ResetMetrics() {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()
	globalMetrics.ops = make(map[string]*opCounters)
}
