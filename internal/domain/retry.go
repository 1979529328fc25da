package domain

import "time"

// RetryPolicy — политика повторных попыток для класса задач.
//
// Неизменяема, задаётся вызывающей стороной и безопасно читается
// конкурентными вызовами без блокировок.
type RetryPolicy struct {
	// MaxAttempts — максимальное количество попыток (>= 1).
	MaxAttempts int

	// Delay — пауза между попытками (>= 0).
	// После последней неудачной попытки пауза не выдерживается.
	Delay time.Duration
}

// Normalize возвращает политику с безопасными значениями.
// MaxAttempts < 1 трактуется как ровно одна попытка, Delay < 0 — как 0.
func (p RetryPolicy) Normalize() RetryPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	return p
}
