// Package domain содержит основные типы данных системы.
//
// Типы:
//   - Mode — режим выполнения (production/develop/test)
//   - RetryPolicy — политика повторных попыток
//   - StatusRecord — структурированный итог одного запуска
//   - ExecutionContext — состояние одного вызова (попытки, тайминги)
//   - BusinessDaySelector, HolidayCalendar — данные для гейта рабочих дней
//   - DeviceInfo — информация об устройстве для уведомлений о сбоях
//
// Пакет не зависит от инфраструктуры (БД, HTTP, MQ).
package domain
