// Package notify отправляет уведомления о невосстановимых сбоях.
//
// Notifier вызывается оркестратором один раз после исчерпания попыток,
// строго после отправки статуса: сбой уведомления не может подавить
// запись телеметрии.
//
// Реализации:
//   - Webhook — HTTP POST c payload {bot, error_message, device_info}
//   - AMQP    — публикация того же payload в vigia.alerts
//
// В не-production режиме контракт деградирует до строки лога
// и отчитывается успехом, ничего не отправляя наружу.
package notify
