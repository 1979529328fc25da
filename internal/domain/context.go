package domain

import "time"

// ExecutionContext — состояние одного вызова обёрнутой задачи.
//
// Создаётся в начале вызова, мутируется только контроллером попыток
// и таймером, после завершения запуска только читается и отбрасывается.
// Никогда не разделяется между конкурентными вызовами одной задачи.
type ExecutionContext struct {
	// StartTime — момент начала вызова.
	StartTime time.Time

	// EndTime — момент завершения (после последней попытки).
	EndTime time.Time

	// Attempts — количество выполненных попыток.
	Attempts int

	// LastErr — ошибка последней неудачной попытки (nil при успехе).
	LastErr error

	// Succeeded — завершился ли запуск успехом.
	Succeeded bool
}

// Duration возвращает общую продолжительность вызова.
func (c *ExecutionContext) Duration() time.Duration {
	if c.EndTime.IsZero() {
		return 0
	}
	return c.EndTime.Sub(c.StartTime)
}
