package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики Prometheus. Экспортируются runner'ом на /metrics.
var (
	// RunsTotal — количество оркестрированных запусков по процессу и исходу.
	// result: "success" | "failed" | "skipped" (гейт не пропустил).
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigia_runs_total",
		Help: "Orchestrated runs by process and result.",
	}, []string{"process", "result"})

	// AttemptsTotal — количество попыток выполнения задач.
	AttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigia_attempts_total",
		Help: "Task invocation attempts by process.",
	}, []string{"process"})

	// RunDuration — продолжительность запуска от первой попытки до отчёта.
	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vigia_run_duration_seconds",
		Help:    "Wall-clock duration of orchestrated runs.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"process"})

	// DeliveryFailures — сбои доставки телеметрии по приёмнику.
	// sink: "webhook" | "store" | "notify".
	DeliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigia_delivery_failures_total",
		Help: "Best-effort delivery failures by sink.",
	}, []string{"sink"})
)
