package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/gate"
	"github.com/shaiso/Vigia/internal/notify"
	"github.com/shaiso/Vigia/internal/report"
	"github.com/shaiso/Vigia/internal/retry"
	"github.com/shaiso/Vigia/internal/task"
	"github.com/shaiso/Vigia/internal/telemetry"
	"github.com/shaiso/Vigia/internal/timing"
)

// Orchestrator оборачивает задачи в контур супервизии:
// гейт, попытки, тайминг, статус, уведомления о сбоях.
type Orchestrator struct {
	process   string
	retry     *retry.Controller
	reporter  *report.Reporter
	notifier  notify.Notifier
	gate      *gate.Gate
	propagate bool
	logger    *slog.Logger
}

// Config — конфигурация Orchestrator.
type Config struct {
	// ProcessName — имя процесса/бота для телеметрии и уведомлений.
	ProcessName string

	// Gate — гейт рабочих дней (опционально; nil — без гейта).
	Gate *gate.Gate

	// Reporter — отправка статуса (опционально; nil — только лог).
	Reporter *report.Reporter

	// Notifier — канал уведомлений о сбоях (опционально).
	Notifier notify.Notifier

	// PropagateOnExhaustion — возвращать ли терминальную ошибку вызывающему.
	// По умолчанию false: ошибка логируется и подавляется, вызывающий
	// получает nil-результат.
	PropagateOnExhaustion bool

	// Logger
	Logger *slog.Logger
}

// New создаёт Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = telemetry.WithProcess(logger, cfg.ProcessName)

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = report.New(report.Config{Logger: logger})
	}

	return &Orchestrator{
		process:   cfg.ProcessName,
		retry:     retry.New(timing.New(logger), logger),
		reporter:  reporter,
		notifier:  cfg.Notifier,
		gate:      cfg.Gate,
		propagate: cfg.PropagateOnExhaustion,
		logger:    logger,
	}
}

// WrapConfig — параметры обёртки для одного класса задач.
//
// Mode и Totals — функции, а не значения: режим и счётчики читаются
// в момент завершения запуска, когда задача уже их заполнила.
type WrapConfig struct {
	// Policy — политика повторных попыток.
	Policy domain.RetryPolicy

	// Mode — возвращает режим выполнения процесса.
	Mode func() domain.Mode

	// Totals — возвращает счётчики запуска (опционально).
	Totals func() domain.Totals

	// LogMessage — префикс сообщения для уведомления о сбое.
	LogMessage string
}

// Wrap оборачивает задачу в контур супервизии.
//
// Обёрнутая задача сохраняет единый контракт Invoke: форма выполнения
// внутренней задачи (блокирующая или кооперативная) определяется её
// собственным адаптером и оркестратором не различается.
func (o *Orchestrator) Wrap(tk task.Task, cfg WrapConfig) task.Task {
	return task.Func(func(ctx context.Context) (any, error) {
		return o.run(ctx, tk, cfg)
	})
}

// run выполняет один оркестрированный запуск.
func (o *Orchestrator) run(ctx context.Context, tk task.Task, cfg WrapConfig) (any, error) {
	// 1. Гейт: снятие запуска — штатный исход, не сбой.
	if o.gate != nil && !o.gate.Allows(ctx, time.Now()) {
		telemetry.RunsTotal.WithLabelValues(o.process, "skipped").Inc()
		return nil, nil
	}

	// 2. Контекст вызова принадлежит только этому запуску.
	execCtx := &domain.ExecutionContext{StartTime: time.Now()}

	// 3. Попытки через таймер.
	result, runErr := o.retry.Run(ctx, tk, cfg.Policy, execCtx)
	execCtx.EndTime = time.Now()

	telemetry.AttemptsTotal.WithLabelValues(o.process).Add(float64(execCtx.Attempts))

	mode := o.resolveMode(cfg)

	// 4. Статус отправляется всегда, до уведомления о сбое.
	// Логи итога запуска несут его run_id.
	rec := domain.NewStatusRecord(o.process, mode, o.resolveTotals(cfg), runErr != nil)
	logger := telemetry.WithRunID(o.logger, rec.RunID.String())
	o.reporter.Report(ctx, rec)

	// 5. Уведомление — только после исчерпания попыток.
	if runErr != nil {
		logger.Error("run failed after all attempts",
			"attempts", execCtx.Attempts,
			"error", runErr,
		)
		o.sendNotification(ctx, logger, mode, cfg.LogMessage, runErr)
	}

	// 6. Общая продолжительность.
	hours, minutes, seconds := timing.Split(execCtx.Duration())
	logger.Info("run completed",
		"succeeded", execCtx.Succeeded,
		"attempts", execCtx.Attempts,
		"hours", hours,
		"minutes", minutes,
		"seconds", seconds,
	)

	telemetry.RunDuration.WithLabelValues(o.process).Observe(execCtx.Duration().Seconds())

	// 7. Результат либо nil после исчерпания попыток.
	if runErr != nil {
		telemetry.RunsTotal.WithLabelValues(o.process, "failed").Inc()
		if o.propagate {
			return nil, runErr
		}
		logger.Warn("terminal error suppressed", "error", runErr)
		return nil, nil
	}

	telemetry.RunsTotal.WithLabelValues(o.process, "success").Inc()
	return result, nil
}

// sendNotification уведомляет о невосстановимом сбое.
// Сбой самого уведомления логируется и не влияет на исход запуска.
func (o *Orchestrator) sendNotification(ctx context.Context, logger *slog.Logger, mode domain.Mode, logMessage string, runErr error) {
	if o.notifier == nil {
		return
	}

	if logMessage == "" {
		logMessage = "unexpected error"
	}
	message := fmt.Sprintf("%s | %v", logMessage, runErr)

	if err := o.notifier.Notify(ctx, o.process, mode, message); err != nil {
		logger.Warn("failed to send failure notification", "error", err)
	}
}

// resolveMode читает режим выполнения в момент завершения запуска.
// Отсутствующий getter трактуется как develop — безопасный dry-run.
func (o *Orchestrator) resolveMode(cfg WrapConfig) domain.Mode {
	if cfg.Mode == nil {
		return domain.ModeDevelop
	}
	return cfg.Mode()
}

// resolveTotals читает счётчики запуска.
func (o *Orchestrator) resolveTotals(cfg WrapConfig) domain.Totals {
	if cfg.Totals == nil {
		return domain.Totals{}
	}
	return cfg.Totals()
}
