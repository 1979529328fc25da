package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Func Tests ---

func TestFunc_Invoke(t *testing.T) {
	tk := Func(func(ctx context.Context) (any, error) {
		return "done", nil
	})

	result, err := tk.Invoke(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "done" {
		t.Errorf("expected done, got %v", result)
	}
}

func TestFunc_Invoke_Error(t *testing.T) {
	boom := errors.New("boom")
	tk := Func(func(ctx context.Context) (any, error) {
		return nil, boom
	})

	_, err := tk.Invoke(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

// --- Deferred Tests ---

func TestDeferred_Invoke(t *testing.T) {
	tk := Defer(func(ctx context.Context) (any, error) {
		return 42, nil
	})

	result, err := tk.Invoke(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %v", result)
	}
}

func TestDeferred_Invoke_Error(t *testing.T) {
	boom := errors.New("boom")
	tk := Defer(func(ctx context.Context) (any, error) {
		return nil, boom
	})

	_, err := tk.Invoke(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestDeferred_ContextCancel(t *testing.T) {
	// Работа блокируется до отмены контекста; Invoke снимается
	// с ожидания, не дожидаясь завершения работы.
	started := make(chan struct{})
	tk := Defer(func(ctx context.Context) (any, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := tk.Invoke(ctx)
		done <- err
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Invoke did not return after cancel")
	}
}

func TestDeferred_DoesNotBlockOthers(t *testing.T) {
	// Кооперативная форма: пока одна задача ждёт, другая выполняется.
	slow := Defer(func(ctx context.Context) (any, error) {
		time.Sleep(50 * time.Millisecond)
		return "slow", nil
	})
	fast := Defer(func(ctx context.Context) (any, error) {
		return "fast", nil
	})

	results := make(chan string, 2)
	go func() {
		r, _ := slow.Invoke(context.Background())
		results <- r.(string)
	}()
	go func() {
		r, _ := fast.Invoke(context.Background())
		results <- r.(string)
	}()

	first := <-results
	if first != "fast" {
		t.Errorf("expected fast to finish first, got %s", first)
	}
	<-results
}
