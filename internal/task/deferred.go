package task

import "context"

// Deferred — кооперативная форма задачи.
//
// Работа стартует на отдельной горутине, Invoke ждёт результат через
// канал. Точки приостановки (ожидание результата, паузы между попытками)
// не блокируют другие задачи в том же процессе: Invoke снимается
// с ожидания при отмене контекста, сама работа продолжает выполняться
// в фоне и её результат отбрасывается.
type Deferred struct {
	fn Func
}

// Defer оборачивает функцию в кооперативную форму.
func Defer(fn Func) *Deferred {
	return &Deferred{fn: fn}
}

// outcome — результат одной попытки, передаётся через канал.
type outcome struct {
	result any
	err    error
}

// Invoke запускает работу и ждёт её завершения или отмены контекста.
func (d *Deferred) Invoke(ctx context.Context) (any, error) {
	done := make(chan outcome, 1)

	go func() {
		result, err := d.fn(ctx)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
