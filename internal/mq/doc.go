// Package mq предоставляет инфраструктуру для работы с RabbitMQ.
//
// Структура:
//   - connection.go — управление соединением с RabbitMQ (ленивый redial, graceful shutdown)
//   - topology.go   — объявление exchanges, queues, bindings
//   - publisher.go  — публикация сообщений в очереди
//
// Канал уведомлений о сбоях — publish-only: система публикует алерты,
// потребляет их внешний пайплайн мониторинга.
//
// Exchanges:
//   - vigia.alerts — уведомления о сбоях запусков
package mq
