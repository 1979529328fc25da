package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/mq"
	"github.com/shaiso/Vigia/internal/telemetry"
)

// AMQP — уведомитель через RabbitMQ (exchange vigia.alerts).
//
// Используется в установках, где алерты потребляет брокерный пайплайн
// мониторинга вместо webhook.
type AMQP struct {
	publisher *mq.Publisher
	logger    *slog.Logger
}

// NewAMQP создаёт AMQP-уведомитель.
func NewAMQP(publisher *mq.Publisher, logger *slog.Logger) *AMQP {
	if logger == nil {
		logger = slog.Default()
	}
	return &AMQP{publisher: publisher, logger: logger}
}

// Notify публикует уведомление о сбое в vigia.alerts.
//
// В не-production режиме публикация пропускается: уведомление
// логируется и возвращается успех.
func (a *AMQP) Notify(ctx context.Context, process string, mode domain.Mode, message string) error {
	if !mode.IsProduction() {
		a.logger.Info("failure notification (not sent)",
			"mode", mode,
			"bot", process,
			"message", message,
		)
		return nil
	}

	p := buildPayload(process, message)
	err := a.publisher.PublishRunFailed(ctx, mq.RunFailedPayload{
		Bot:          p.Bot,
		ErrorMessage: p.ErrorMessage,
		DeviceInfo:   p.DeviceInfo,
	})
	if err != nil {
		telemetry.DeliveryFailures.WithLabelValues("notify").Inc()
		return fmt.Errorf("publish failure alert: %w", err)
	}

	a.logger.Info("failure notification published", "bot", process)
	return nil
}
