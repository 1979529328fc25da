// Package timing измеряет wall-clock продолжительность единицы работы.
package timing

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaiso/Vigia/internal/task"
)

// Timer измеряет продолжительность одной попытки выполнения задачи.
//
// Timer не глотает ошибки: после фиксации таймингов ошибка возвращается
// вызывающему как есть, так что он всегда наблюдает и ошибку,
// и затраченное время (через логи).
type Timer struct {
	logger *slog.Logger
}

// New создаёт Timer.
func New(logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{logger: logger}
}

// Measure выполняет задачу и возвращает результат, продолжительность и ошибку.
//
// Старт фиксируется непосредственно перед вызовом, конец — сразу после
// возврата (успешного или с ошибкой). Логируются две строки: начало
// и конец с разбивкой продолжительности на часы/минуты/секунды.
func (t *Timer) Measure(ctx context.Context, tk task.Task) (any, time.Duration, error) {
	start := time.Now()
	t.logger.Info("execution started", "start", start.Format("15:04:05"))

	result, err := tk.Invoke(ctx)

	end := time.Now()
	duration := end.Sub(start)
	hours, minutes, seconds := Split(duration)
	t.logger.Info("execution finished",
		"end", end.Format("15:04:05"),
		"hours", hours,
		"minutes", minutes,
		"seconds", seconds,
	)

	return result, duration, err
}

// Split раскладывает продолжительность на часы, минуты и секунды.
func Split(d time.Duration) (hours, minutes, seconds int) {
	total := int(d.Seconds())
	return total / 3600, (total % 3600) / 60, total % 60
}
