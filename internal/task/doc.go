// Package task определяет единый контракт вызова единицы работы.
//
// Две формы выполнения сведены к одному интерфейсу Task:
//   - Func — блокирующий вызов на текущей горутине
//   - Deferred — кооперативный вызов: работа стартует на своей горутине,
//     Invoke ждёт результат через канал, не блокируя другие задачи
//
// Оркестратор работает только с интерфейсом и не различает формы —
// никакой рефлексии и runtime-детекции.
package task
