package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/task"
	"github.com/shaiso/Vigia/internal/timing"
)

// Controller повторяет выполнение задачи согласно политике.
type Controller struct {
	timer  *timing.Timer
	logger *slog.Logger
}

// New создаёт Controller.
func New(timer *timing.Timer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if timer == nil {
		timer = timing.New(logger)
	}
	return &Controller{timer: timer, logger: logger}
}

// Run выполняет задачу с повторными попытками.
//
// Попытки строго последовательны: следующая не начинается, пока предыдущая
// не завершилась. Успех возвращается немедленно — без дальнейших попыток
// и без паузы. После последней неудачной попытки возвращается ошибка,
// оборачивающая ErrExhausted и исходную ошибку.
//
// execCtx мутируется по ходу: счётчик попыток, последняя ошибка, признак
// успеха. Владение — исключительно у текущего вызова.
func (c *Controller) Run(ctx context.Context, tk task.Task, policy domain.RetryPolicy, execCtx *domain.ExecutionContext) (any, error) {
	policy = policy.Normalize()

	var lastErr error

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		execCtx.Attempts = attempt

		result, _, err := c.timer.Measure(ctx, tk)
		if err == nil {
			execCtx.Succeeded = true
			execCtx.LastErr = nil
			return result, nil
		}

		lastErr = err
		execCtx.LastErr = err

		c.logger.Warn("attempt failed",
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"error", err,
		)

		// Пауза только между попытками, не после последней.
		if attempt < policy.MaxAttempts && policy.Delay > 0 {
			select {
			case <-time.After(policy.Delay):
			case <-ctx.Done():
				execCtx.LastErr = ctx.Err()
				return nil, fmt.Errorf("%w: %w", ErrExhausted, ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, policy.MaxAttempts, lastErr)
}
