package task

import "context"

// Task — вызываемая единица работы.
//
// Invoke выполняет одну попытку и возвращает результат либо ошибку.
// Контракт одинаков для блокирующей и кооперативной форм: вызывающий
// всегда получает результат тем же способом.
type Task interface {
	Invoke(ctx context.Context) (any, error)
}

// Func — блокирующая форма: каждая попытка занимает вызывающую
// горутину до возврата.
type Func func(ctx context.Context) (any, error)

// Invoke выполняет функцию напрямую.
func (f Func) Invoke(ctx context.Context) (any, error) {
	return f(ctx)
}
