package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shaiso/Vigia/internal/task"
)

// Job — зарегистрированная задача с расписанием.
type Job struct {
	// Name — имя job для логов.
	Name string

	// CronExpr — cron-выражение (5 полей).
	CronExpr string

	// Timezone — timezone расписания (default: UTC).
	Timezone string

	// Task — обёрнутая задача; весь контур супервизии
	// (гейт, попытки, статус) уже внутри неё.
	Task task.Task
}

// entry — job с вычисленным временем следующего запуска.
type entry struct {
	job     Job
	nextDue time.Time
}

// Scheduler запускает jobs по расписанию.
type Scheduler struct {
	mu      sync.Mutex
	entries []*entry
	running sync.WaitGroup
	logger  *slog.Logger
}

// Config — конфигурация Scheduler.
type Config struct {
	Logger *slog.Logger
}

// New создаёт новый Scheduler.
func New(cfg Config) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{logger: logger}
}

// Add регистрирует job. Cron-выражение валидируется сразу.
func (s *Scheduler) Add(job Job) error {
	if job.Task == nil {
		return fmt.Errorf("job %q has no task", job.Name)
	}
	if err := ValidateCronExpr(job.CronExpr); err != nil {
		return err
	}
	if job.Timezone == "" {
		job.Timezone = "UTC"
	}

	nextDue, err := CalculateNextDue(job.CronExpr, job.Timezone, time.Now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, &entry{job: job, nextDue: nextDue})

	s.logger.Info("job registered",
		"job", job.Name,
		"cron", job.CronExpr,
		"timezone", job.Timezone,
		"next_due", nextDue,
	)
	return nil
}

// Tick выполняет один тик планировщика: запускает созревшие jobs
// и сдвигает их next_due. Ошибки одного job не блокируют остальные.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	for _, e := range s.due(now) {
		s.runJob(ctx, e, now)
	}
}

// due возвращает созревшие entries и сразу сдвигает их next_due,
// чтобы один и тот же момент не сработал дважды.
func (s *Scheduler) due(now time.Time) []*entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ready []*entry
	for _, e := range s.entries {
		if e.nextDue.After(now) {
			continue
		}

		next, err := CalculateNextDue(e.job.CronExpr, e.job.Timezone, now)
		if err != nil {
			// Выражение валидировалось в Add; сюда попадать не должны.
			s.logger.Error("failed to advance job schedule", "job", e.job.Name, "error", err)
			continue
		}
		e.nextDue = next

		ready = append(ready, e)
	}
	return ready
}

// runJob запускает job на своей горутине.
// Запуски одного job не накладываются только за счёт расписания;
// долгий запуск поверх следующего срабатывания — ответственность
// настройки cron-выражения.
func (s *Scheduler) runJob(ctx context.Context, e *entry, now time.Time) {
	s.logger.Info("job due", "job", e.job.Name, "at", now.Format(time.RFC3339))

	s.running.Add(1)
	go func() {
		defer s.running.Done()

		if _, err := e.job.Task.Invoke(ctx); err != nil {
			// Обёрнутая задача обычно подавляет терминальные ошибки;
			// сюда доходит только propagate-режим.
			s.logger.Error("job failed", "job", e.job.Name, "error", err)
		}
	}()
}

// Wait ждёт завершения всех запущенных jobs (graceful shutdown).
func (s *Scheduler) Wait() {
	s.running.Wait()
}

// Len возвращает количество зарегистрированных jobs.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
