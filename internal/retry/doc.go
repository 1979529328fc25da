// Package retry повторяет выполнение задачи согласно RetryPolicy.
//
// Controller вызывает задачу через timing.Timer, логирует каждую
// неудачную попытку и выдерживает паузу между попытками (но не после
// последней). Терминальная ошибка оборачивает и sentinel ErrExhausted,
// и исходную ошибку последней попытки — errors.Is работает для обеих.
package retry
