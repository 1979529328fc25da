package report

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/telemetry"
)

// deliverWebhook отправляет StatusRecord на настроенный webhook.
//
// Тело ответа не требуется; любой не-2xx код логируется как сбой
// доставки. Ошибка никогда не поднимается выше.
func (r *Reporter) deliverWebhook(ctx context.Context, rec *domain.StatusRecord) {
	if r.webhookURL == "" {
		return
	}

	body, err := json.Marshal(rec)
	if err != nil {
		telemetry.DeliveryFailures.WithLabelValues("webhook").Inc()
		r.logger.Warn("failed to marshal status record", "run_id", rec.RunID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if err != nil {
		telemetry.DeliveryFailures.WithLabelValues("webhook").Inc()
		r.logger.Warn("failed to create webhook request", "run_id", rec.RunID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		telemetry.DeliveryFailures.WithLabelValues("webhook").Inc()
		r.logger.Warn("failed to deliver status webhook", "run_id", rec.RunID, "error", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		telemetry.DeliveryFailures.WithLabelValues("webhook").Inc()
		r.logger.Warn("status webhook rejected",
			"run_id", rec.RunID,
			"status_code", resp.StatusCode,
		)
		return
	}

	r.logger.Info("status webhook delivered",
		"run_id", rec.RunID,
		"status_code", resp.StatusCode,
	)
}
