package logger

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordOperation(t *testing.T) {
	ResetMetrics()

	RecordOperation("list records", nil, 10*time.Millisecond)
	RecordOperation("list records", errors.New("boom"), 30*time.Millisecond)

	stats, ok := GetMetrics()["list records"]
	if !ok {
		t.Fatal("expected stats for recorded operation")
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2", stats.Total)
	}
	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if stats.AvgLatencyMs != 20 {
		t.Errorf("AvgLatencyMs = %v, want 20", stats.AvgLatencyMs)
	}
	if _, ok := GetMetrics()["never recorded"]; ok {
		t.Error("unexpected stats for operation that never ran")
	}
}

func TestTimedOperation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ResetMetrics()

		ran := false
		err := TimedOperation(context.Background(), "pull records", func() error {
			ran = true
			return nil
		})
		if err != nil {
			t.Fatalf("TimedOperation() error = %v", err)
		}
		if !ran {
			t.Fatal("wrapped function did not run")
		}

		stats := GetMetrics()["pull records"]
		if stats.Total != 1 || stats.Failed != 0 {
			t.Errorf("stats = %+v, want Total 1 Failed 0", stats)
		}
	})

	t.Run("failure", func(t *testing.T) {
		ResetMetrics()

		wantErr := errors.New("zone unreachable")
		err := TimedOperation(context.Background(), "pull records", func() error {
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("TimedOperation() error = %v, want %v", err, wantErr)
		}

		stats := GetMetrics()["pull records"]
		if stats.Total != 1 || stats.Failed != 1 {
			t.Errorf("stats = %+v, want Total 1 Failed 1", stats)
		}
	})
}

func TestResetMetrics(t *testing.T) {
	RecordOperation("delete record", nil, time.Millisecond)
	ResetMetrics()

	if stats := GetMetrics(); len(stats) != 0 {
		t.Errorf("GetMetrics() after reset = %v, want empty", stats)
	}
}
