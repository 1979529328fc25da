package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/telemetry"
)

const defaultTimeout = 30 * time.Second

// Webhook — уведомитель через HTTP POST.
type Webhook struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhook создаёт Webhook-уведомитель.
func NewWebhook(url string, client *http.Client, logger *slog.Logger) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{url: url, client: client, logger: logger}
}

// Notify отправляет уведомление о сбое.
//
// В не-production режиме ничего не отправляется: уведомление
// логируется и возвращается успех.
func (w *Webhook) Notify(ctx context.Context, process string, mode domain.Mode, message string) error {
	if !mode.IsProduction() {
		w.logger.Info("failure notification (not sent)",
			"mode", mode,
			"bot", process,
			"message", message,
		)
		return nil
	}

	body, err := json.Marshal(buildPayload(process, message))
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		telemetry.DeliveryFailures.WithLabelValues("notify").Inc()
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		telemetry.DeliveryFailures.WithLabelValues("notify").Inc()
		return fmt.Errorf("notification rejected: HTTP %d", resp.StatusCode)
	}

	w.logger.Info("failure notification sent", "bot", process, "status_code", resp.StatusCode)
	return nil
}
