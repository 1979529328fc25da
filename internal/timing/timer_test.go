package timing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shaiso/Vigia/internal/task"
)

// --- Measure Tests ---

func TestTimer_Measure_Success(t *testing.T) {
	timer := New(nil)

	result, duration, err := timer.Measure(context.Background(), task.Func(func(ctx context.Context) (any, error) {
		time.Sleep(10 * time.Millisecond)
		return "ok", nil
	}))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("expected ok, got %v", result)
	}
	if duration < 10*time.Millisecond {
		t.Errorf("duration should cover the task, got %v", duration)
	}
}

func TestTimer_Measure_ErrorNotSwallowed(t *testing.T) {
	// Ошибка возвращается как есть после фиксации таймингов.
	boom := errors.New("boom")
	timer := New(nil)

	_, duration, err := timer.Measure(context.Background(), task.Func(func(ctx context.Context) (any, error) {
		return nil, boom
	}))

	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if duration < 0 {
		t.Errorf("duration should be recorded, got %v", duration)
	}
}

// --- Split Tests ---

func TestSplit(t *testing.T) {
	tests := []struct {
		d       time.Duration
		h, m, s int
	}{
		{0, 0, 0, 0},
		{45 * time.Second, 0, 0, 45},
		{90 * time.Second, 0, 1, 30},
		{time.Hour + 2*time.Minute + 3*time.Second, 1, 2, 3},
		{25 * time.Hour, 25, 0, 0},
	}

	for _, tt := range tests {
		h, m, s := Split(tt.d)
		if h != tt.h || m != tt.m || s != tt.s {
			t.Errorf("Split(%v) = %d:%d:%d, want %d:%d:%d", tt.d, h, m, s, tt.h, tt.m, tt.s)
		}
	}
}
