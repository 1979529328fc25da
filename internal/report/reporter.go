package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/telemetry"
)

const defaultWebhookTimeout = 30 * time.Second

// StatusStore — аналитическое хранилище статусов.
//
// Реализация: repo.StatusRepo. Insert пишет одну денормализованную
// строку, Optimize запускает обслуживание таблицы назначения.
type StatusStore interface {
	Insert(ctx context.Context, rec *domain.StatusRecord) error
	Optimize(ctx context.Context) error
}

// Reporter собирает и доставляет StatusRecord.
type Reporter struct {
	webhookURL string
	client     *http.Client
	store      StatusStore
	logger     *slog.Logger
}

// Config — конфигурация Reporter.
type Config struct {
	// WebhookURL — адрес webhook для POST статуса (опционально).
	WebhookURL string

	// Client — HTTP-клиент (опционально; default с таймаутом 30s).
	Client *http.Client

	// Store — аналитическое хранилище (опционально).
	Store StatusStore

	// Logger
	Logger *slog.Logger
}

// New создаёт Reporter.
func New(cfg Config) *Reporter {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: defaultWebhookTimeout}
	}

	return &Reporter{
		webhookURL: cfg.WebhookURL,
		client:     client,
		store:      cfg.Store,
		logger:     logger,
	}
}

// Report логирует запись и доставляет её в оба приёмника.
//
// Никогда не возвращает ошибку. Режим проверяется один раз, до любой
// попытки доставки: не-production — dry-run, запись только логируется.
func (r *Reporter) Report(ctx context.Context, rec *domain.StatusRecord) {
	r.logger.Info("execution status",
		"run_id", rec.RunID,
		"process", rec.ProcessName,
		"mode", rec.Mode,
		"total", rec.Parameters.Total,
		"success", rec.Parameters.Success,
		"fail", rec.Failed,
	)

	if !rec.Mode.IsProduction() {
		r.logger.Info("dry run: status delivery skipped", "mode", rec.Mode)
		return
	}

	r.deliverWebhook(ctx, rec)
	r.deliverStore(ctx, rec)
}

// deliverStore пишет строку в аналитическое хранилище и запускает
// обслуживание таблицы. Оба шага best-effort.
func (r *Reporter) deliverStore(ctx context.Context, rec *domain.StatusRecord) {
	if r.store == nil {
		return
	}

	if err := r.store.Insert(ctx, rec); err != nil {
		telemetry.DeliveryFailures.WithLabelValues("store").Inc()
		r.logger.Warn("failed to insert status row", "run_id", rec.RunID, "error", err)
		return
	}

	if err := r.store.Optimize(ctx); err != nil {
		r.logger.Warn("failed to optimize status table", "error", err)
	}
}
