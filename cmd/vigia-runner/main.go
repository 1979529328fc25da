// Vigia Runner — демон, выполняющий обёрнутые задачи по расписанию.
//
// Runner:
//   - Собирает контур супервизии из переменных окружения
//   - Запускает тик планировщика раз в секунду
//   - Держит лидерство через pg_try_advisory_lock
//   - Экспортирует /healthz и /metrics
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/gate"
	"github.com/shaiso/Vigia/internal/mq"
	"github.com/shaiso/Vigia/internal/notify"
	"github.com/shaiso/Vigia/internal/orchestrator"
	"github.com/shaiso/Vigia/internal/repo"
	"github.com/shaiso/Vigia/internal/report"
	"github.com/shaiso/Vigia/internal/scheduler"
	"github.com/shaiso/Vigia/internal/task"
	"github.com/shaiso/Vigia/internal/telemetry"
)

const runnerLockKey int64 = 424242

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting vigia-runner")

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Режим выполнения — общий для всех jobs процесса.
	mode := domain.ParseMode(os.Getenv("EXECUTION_MODE"))
	processName := envOr("PROCESS_NAME", "vigia")
	logger = telemetry.WithMode(telemetry.WithProcess(logger, processName), mode.String())

	// DB pool — нужен для advisory lock, статусов и календаря праздников.
	pool, err := repo.NewPool(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected")

	statusRepo := repo.NewStatusRepo(pool)
	holidayRepo := repo.NewHolidayRepo(pool)

	// RabbitMQ — опционален: без него уведомления идут через webhook.
	var publisher *mq.Publisher
	var mqConn *mq.Connection
	mqURL := envOr("RABBITMQ_URL", mq.DefaultURL())
	if conn, err := mq.NewConnection(mqURL, logger); err != nil {
		logger.Warn("RabbitMQ not available, webhook notifications only", "error", err)
	} else {
		mqConn = conn
		defer mqConn.Close()
		logger.Info("RabbitMQ connected")

		if err := mq.SetupTopology(ctx, mqConn); err != nil {
			logger.Warn("failed to setup topology", "error", err)
		} else {
			logger.Info("topology ready", "topology", mq.TopologyInfo())
		}
		publisher = mq.NewPublisher(mqConn, logger)
	}

	// Канал уведомлений: webhook, если задан URL, иначе AMQP.
	var notifier notify.Notifier
	if url := os.Getenv("WEBHOOK_FAIL_URL"); url != "" {
		notifier = notify.NewWebhook(url, nil, logger)
	} else if publisher != nil {
		notifier = notify.NewAMQP(publisher, logger)
	} else {
		logger.Warn("no failure notification channel configured")
	}

	// Гейт рабочих дней (опционально: GATE_ORDINAL=0 отключает).
	var dayGate *gate.Gate
	if ordinal := envInt("GATE_ORDINAL", 0); ordinal > 0 {
		dayGate = gate.New(gate.Config{
			Selector: domain.BusinessDaySelector{
				Ordinal:     ordinal,
				Country:     envOr("GATE_COUNTRY", "BR"),
				Subdivision: os.Getenv("GATE_SUBDIV"),
			},
			Source: holidayRepo,
			Debug:  os.Getenv("GATE_DEBUG") == "true",
			Logger: logger,
		})
	}

	// Оркестратор
	orch := orchestrator.New(orchestrator.Config{
		ProcessName: processName,
		Gate:        dayGate,
		Reporter: report.New(report.Config{
			WebhookURL: os.Getenv("WEBHOOK_STATUS_URL"),
			Store:      statusRepo,
			Logger:     logger,
		}),
		Notifier:              notifier,
		PropagateOnExhaustion: os.Getenv("PROPAGATE_ON_EXHAUSTION") == "true",
		Logger:                logger,
	})

	// Планировщик с одним сконфигурированным job.
	// Рабочая функция процесса подключается здесь.
	sched := scheduler.New(scheduler.Config{Logger: logger})
	job := scheduler.Job{
		Name:     processName,
		CronExpr: envOr("JOB_CRON", "0 8 * * *"),
		Timezone: envOr("JOB_TIMEZONE", "America/Sao_Paulo"),
		Task: orch.Wrap(processTask(logger), orchestrator.WrapConfig{
			Policy: domain.RetryPolicy{
				MaxAttempts: envInt("MAX_ATTEMPTS", 3),
				Delay:       time.Duration(envInt("RETRY_DELAY_SEC", 60)) * time.Second,
			},
			Mode:       func() domain.Mode { return mode },
			LogMessage: envOr("FAIL_MESSAGE", "unexpected error"),
		}),
	}
	if err := sched.Add(job); err != nil {
		logger.Error("failed to register job", "error", err)
		os.Exit(1)
	}

	// scheduler loop
	go func() {
		tk := time.NewTicker(1 * time.Second)
		defer tk.Stop()

		var hasLock bool
		defer func() {
			if hasLock {
				_, _ = pool.Exec(context.Background(), "select pg_advisory_unlock($1)", runnerLockKey)
			}
		}()

		for {
			select {
			case t := <-tk.C:
				// Пытаемся стать лидером (или подтвердить лидерство)
				if !hasLock {
					var ok bool
					if err := pool.QueryRow(ctx, "select pg_try_advisory_lock($1)", runnerLockKey).Scan(&ok); err != nil {
						logger.Warn("leader lock error", "error", err)
						continue
					}
					hasLock = ok
				}

				if !hasLock {
					// Не лидер — пропускаем тик
					continue
				}

				sched.Tick(ctx, t)

			case <-ctx.Done():
				sched.Wait()
				return
			}
		}
	}()

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		// Канал алертов опционален: его отсутствие — деградация, не сбой.
		if mqConn != nil && !mqConn.IsConnected() {
			w.Write([]byte("ok (alerts channel down)"))
			return
		}
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	if v := os.Getenv("RUNNER_PORT"); v != "" {
		port = ":" + v
	}
	logger.Info("listening", "port", port)
	if err := http.ListenAndServe(port, mux); err != nil {
		logger.Error("http server error", "error", err)
		cancel()
	}
}

// processTask — рабочая функция процесса: сюда подключается реальная
// автоматизация. Заглушка только логирует вызов, весь контур супервизии
// вокруг неё рабочий.
func processTask(logger *slog.Logger) task.Task {
	return task.Func(func(ctx context.Context) (any, error) {
		logger.Info("process task invoked")
		return nil, nil
	})
}

// envOr возвращает значение переменной окружения или default.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt возвращает целое из переменной окружения или default.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
