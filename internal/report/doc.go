// Package report доставляет итоговый статус запуска в телеметрию.
//
// Reporter никогда не возвращает ошибку вызывающему: сбой доставки
// логируется и поглощается, потому что телеметрия не должна прерывать
// или маскировать исход самой задачи.
//
// Приёмники (webhook и аналитическое хранилище) независимы: оба
// вызываются best-effort, сбой одного не влияет на другой.
// Любой режим, кроме production, — dry-run без сетевой доставки.
package report
