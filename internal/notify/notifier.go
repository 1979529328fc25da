package notify

import (
	"context"

	"github.com/shaiso/Vigia/internal/domain"
)

// Notifier — канал уведомлений о невосстановимых сбоях.
type Notifier interface {
	// Notify отправляет уведомление о сбое процесса.
	Notify(ctx context.Context, process string, mode domain.Mode, message string) error
}

// payload — тело уведомления, общее для всех каналов.
type payload struct {
	Bot          string            `json:"bot"`
	ErrorMessage string            `json:"error_message"`
	DeviceInfo   domain.DeviceInfo `json:"device_info"`
}

// defaultMessage используется, если сообщение не задано.
const defaultMessage = "failure during processing"

func buildPayload(process, message string) payload {
	if message == "" {
		message = defaultMessage
	}
	return payload{
		Bot:          process,
		ErrorMessage: message,
		DeviceInfo:   domain.CollectDeviceInfo(),
	}
}
