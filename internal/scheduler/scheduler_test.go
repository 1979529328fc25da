package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shaiso/Vigia/internal/task"
)

// --- Cron Tests ---

func TestCalculateNextDue(t *testing.T) {
	from := time.Date(2025, time.September, 1, 7, 30, 0, 0, time.UTC)

	next, err := CalculateNextDue("0 8 * * *", "UTC", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestCalculateNextDue_Timezone(t *testing.T) {
	// 8:00 в Сан-Паулу (UTC-3) — это 11:00 UTC.
	from := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	next, err := CalculateNextDue("0 8 * * *", "America/Sao_Paulo", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.September, 1, 11, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v (UTC)", next.UTC(), want)
	}
}

func TestCalculateNextDue_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	from := time.Date(2025, time.September, 1, 7, 30, 0, 0, time.UTC)

	next, err := CalculateNextDue("0 8 * * *", "Mars/Olympus", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestValidateCronExpr(t *testing.T) {
	if err := ValidateCronExpr("0 8 * * *"); err != nil {
		t.Errorf("valid expression rejected: %v", err)
	}
	if err := ValidateCronExpr("not a cron"); err == nil {
		t.Error("invalid expression accepted")
	}
	if err := ValidateCronExpr("0 8 * *"); err == nil {
		t.Error("four-field expression accepted")
	}
}

// --- Scheduler Tests ---

func TestScheduler_Add(t *testing.T) {
	s := New(Config{})

	err := s.Add(Job{
		Name:     "test-job",
		CronExpr: "0 8 * * *",
		Task:     task.Func(func(ctx context.Context) (any, error) { return nil, nil }),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 job, got %d", s.Len())
	}
}

func TestScheduler_Add_InvalidCron(t *testing.T) {
	s := New(Config{})

	err := s.Add(Job{
		Name:     "bad-job",
		CronExpr: "not a cron",
		Task:     task.Func(func(ctx context.Context) (any, error) { return nil, nil }),
	})
	if err == nil {
		t.Error("expected error for invalid cron expression")
	}
	if s.Len() != 0 {
		t.Errorf("invalid job should not be registered, got %d", s.Len())
	}
}

func TestScheduler_Add_NilTask(t *testing.T) {
	s := New(Config{})

	if err := s.Add(Job{Name: "empty", CronExpr: "0 8 * * *"}); err == nil {
		t.Error("expected error for job without a task")
	}
}

func TestScheduler_Tick_FiresDueJob(t *testing.T) {
	var runs atomic.Int32
	s := New(Config{})

	err := s.Add(Job{
		Name:     "due-job",
		CronExpr: "* * * * *",
		Task: task.Func(func(ctx context.Context) (any, error) {
			runs.Add(1)
			return nil, nil
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Созревание имитируется сдвигом next_due в прошлое.
	s.mu.Lock()
	s.entries[0].nextDue = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	s.Tick(context.Background(), time.Now())
	s.Wait()

	if runs.Load() != 1 {
		t.Errorf("expected 1 run, got %d", runs.Load())
	}

	// Тот же момент не срабатывает дважды: next_due уже сдвинут вперёд.
	s.Tick(context.Background(), time.Now())
	s.Wait()

	if runs.Load() != 1 {
		t.Errorf("job should not fire twice for the same due time, got %d", runs.Load())
	}
}

func TestScheduler_Tick_NotDueJobDoesNotFire(t *testing.T) {
	var runs atomic.Int32
	s := New(Config{})

	err := s.Add(Job{
		Name:     "future-job",
		CronExpr: "0 8 * * *",
		Task: task.Func(func(ctx context.Context) (any, error) {
			runs.Add(1)
			return nil, nil
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Tick(context.Background(), time.Now())
	s.Wait()

	if runs.Load() != 0 {
		t.Errorf("job should not fire before next_due, got %d", runs.Load())
	}
}
