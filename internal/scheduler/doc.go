// Package scheduler запускает обёрнутые задачи по расписанию.
//
// Jobs регистрируются в коде вызывающей стороны с cron-выражением
// и timezone. Scheduler держит next_due в памяти; метод Tick()
// вызывается раз в секунду и запускает созревшие jobs.
//
// Структура:
//   - scheduler.go — основная логика (Tick, runJob)
//   - cron.go      — парсинг cron-выражений и вычисление следующего времени
//
// Leader Election:
//
// Scheduler не реализует leader election самостоятельно.
// Это делается в main.go через pg_try_advisory_lock.
// Метод Tick() вызывается только лидером.
package scheduler
