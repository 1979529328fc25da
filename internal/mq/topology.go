package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// Exchanges — имена обменников.
const (
	ExchangeAlerts Exchange = "vigia.alerts"
)

// Queues — имена очередей.
const (
	QueueAlertsFailures Queue = "alerts.failures"
)

// Routing keys.
const (
	RoutingKeyFailure RoutingKey = "failure"
)

func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		// 1. Создаём exchange
		err := ch.ExchangeDeclare(
			string(ExchangeAlerts), // name
			"direct",               // type
			true,                   // durable
			false,                  // auto-deleted
			false,                  // internal
			false,                  // no-wait
			nil,                    // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeAlerts, err)
		}

		// 2. Создаём queue
		_, err = ch.QueueDeclare(
			string(QueueAlertsFailures), // name
			true,                        // durable
			false,                       // delete when unused
			false,                       // exclusive
			false,                       // no-wait
			nil,                         // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", QueueAlertsFailures, err)
		}

		// 3. Привязываем queue к exchange
		err = ch.QueueBind(
			string(QueueAlertsFailures), // queue name
			string(RoutingKeyFailure),   // routing key
			string(ExchangeAlerts),      // exchange
			false,                       // no-wait
			nil,                         // arguments
		)
		if err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", QueueAlertsFailures, ExchangeAlerts, err)
		}

		return nil
	})
}

// TopologyInfo возвращает краткое описание топологии для лога.
func TopologyInfo() string {
	return fmt.Sprintf("%s (direct) -> %s [%s]", ExchangeAlerts, QueueAlertsFailures, RoutingKeyFailure)
}
