package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
)

// countingTask считает вызовы и падает первые failUntil попыток.
type countingTask struct {
	calls     int
	failUntil int
	err       error
}

func (c *countingTask) Invoke(ctx context.Context) (any, error) {
	c.calls++
	if c.calls <= c.failUntil {
		return nil, c.err
	}
	return c.calls, nil
}

// --- Run Tests ---

func TestController_Run_SuccessFirstAttempt(t *testing.T) {
	tk := &countingTask{err: errors.New("boom")}
	execCtx := &domain.ExecutionContext{}

	result, err := New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 3, Delay: time.Hour}, execCtx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.calls != 1 {
		t.Errorf("expected 1 call, got %d", tk.calls)
	}
	if result != 1 {
		t.Errorf("expected result 1, got %v", result)
	}
	if !execCtx.Succeeded {
		t.Error("execCtx should be marked succeeded")
	}
	if execCtx.Attempts != 1 {
		t.Errorf("expected 1 attempt recorded, got %d", execCtx.Attempts)
	}
}

func TestController_Run_SuccessAfterRetries(t *testing.T) {
	// Падает на попытках 1 и 2, успех на 3-й: ровно 3 вызова,
	// дальнейших попыток нет.
	tk := &countingTask{failUntil: 2, err: errors.New("boom")}
	execCtx := &domain.ExecutionContext{}

	result, err := New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond}, execCtx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.calls != 3 {
		t.Errorf("expected 3 calls, got %d", tk.calls)
	}
	if result != 3 {
		t.Errorf("expected result 3, got %v", result)
	}
	if execCtx.Attempts != 3 {
		t.Errorf("expected 3 attempts recorded, got %d", execCtx.Attempts)
	}
	if execCtx.LastErr != nil {
		t.Errorf("LastErr should be cleared on success, got %v", execCtx.LastErr)
	}
}

func TestController_Run_AllAttemptsFail(t *testing.T) {
	boom := errors.New("boom")
	tk := &countingTask{failUntil: 100, err: boom}
	execCtx := &domain.ExecutionContext{}

	_, err := New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond}, execCtx)

	if tk.calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", tk.calls)
	}
	// Терминальная ошибка оборачивает и sentinel, и исходную ошибку.
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected original error to be inspectable, got %v", err)
	}
	if execCtx.Succeeded {
		t.Error("execCtx should not be marked succeeded")
	}
	if !errors.Is(execCtx.LastErr, boom) {
		t.Errorf("LastErr should hold the last failure, got %v", execCtx.LastErr)
	}
}

func TestController_Run_SingleAttempt_NoDelay(t *testing.T) {
	// MaxAttempts=1: ровно одна попытка, без паузы после неё.
	tk := &countingTask{failUntil: 100, err: errors.New("boom")}
	execCtx := &domain.ExecutionContext{}

	start := time.Now()
	_, err := New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 1, Delay: time.Hour}, execCtx)
	elapsed := time.Since(start)

	if tk.calls != 1 {
		t.Errorf("expected 1 call, got %d", tk.calls)
	}
	if err == nil {
		t.Fatal("expected error")
	}
	if elapsed > time.Second {
		t.Errorf("no delay should occur after the last attempt, took %v", elapsed)
	}
}

func TestController_Run_DelayBetweenAttempts(t *testing.T) {
	tk := &countingTask{failUntil: 100, err: errors.New("boom")}
	delay := 30 * time.Millisecond

	start := time.Now()
	New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 3, Delay: delay}, &domain.ExecutionContext{})
	elapsed := time.Since(start)

	// Две паузы между тремя попытками, ни одной после последней.
	if elapsed < 2*delay {
		t.Errorf("expected at least %v of delays, took %v", 2*delay, elapsed)
	}
	if elapsed > 10*delay {
		t.Errorf("delay after the last attempt suspected, took %v", elapsed)
	}
}

func TestController_Run_NormalizesPolicy(t *testing.T) {
	// MaxAttempts < 1 трактуется как одна попытка.
	tk := &countingTask{failUntil: 100, err: errors.New("boom")}

	_, err := New(nil, nil).Run(context.Background(), tk,
		domain.RetryPolicy{MaxAttempts: 0}, &domain.ExecutionContext{})

	if tk.calls != 1 {
		t.Errorf("expected 1 call, got %d", tk.calls)
	}
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestController_Run_ContextCancelDuringDelay(t *testing.T) {
	// Отмена контекста снимает ожидание между попытками.
	tk := &countingTask{failUntil: 100, err: errors.New("boom")}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := New(nil, nil).Run(ctx, tk,
		domain.RetryPolicy{MaxAttempts: 3, Delay: time.Hour}, &domain.ExecutionContext{})
	elapsed := time.Since(start)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if elapsed > time.Second {
		t.Errorf("cancel should interrupt the delay, took %v", elapsed)
	}
	if tk.calls != 1 {
		t.Errorf("expected 1 call before cancel, got %d", tk.calls)
	}
}
