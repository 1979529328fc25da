// Package gate решает, должен ли запуск состояться сегодня.
//
// Гейт пропускает выполнение только если сегодня — ровно N-й рабочий день
// месяца (будний день, не входящий в календарь праздников). Пропуск гейтом —
// штатный исход, а не сбой.
package gate

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaiso/Vigia/internal/domain"
)

// CalendarSource — источник праздничных дат для страны/региона.
//
// Реализация: repo.HolidayRepo. Ошибка источника трактуется как
// отсутствие праздников, а не как сбой запуска.
type CalendarSource interface {
	Calendar(ctx context.Context, country, subdivision string) (*domain.HolidayCalendar, error)
}

// Gate — гейт рабочих дней.
type Gate struct {
	selector domain.BusinessDaySelector
	source   CalendarSource
	debug    bool
	logger   *slog.Logger
}

// Config — конфигурация Gate.
type Config struct {
	// Selector — какой рабочий день месяца разрешает выполнение.
	Selector domain.BusinessDaySelector

	// Source — источник праздников (опционально; nil — только будни).
	Source CalendarSource

	// Debug — принудительный пропуск: гейт всегда разрешает выполнение.
	// Используется для ручных запусков.
	Debug bool

	// Logger
	Logger *slog.Logger
}

// New создаёт Gate.
func New(cfg Config) *Gate {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		selector: cfg.Selector,
		source:   cfg.Source,
		debug:    cfg.Debug,
		logger:   logger,
	}
}

// Allows решает, разрешено ли выполнение для момента now.
func (g *Gate) Allows(ctx context.Context, now time.Time) bool {
	if g.debug {
		g.logger.Info("debug mode: gate bypassed")
		return true
	}

	calendar := g.loadCalendar(ctx)

	if !ShouldRun(now, g.selector, calendar) {
		g.logger.Info("not the configured business day, execution skipped",
			"today", now.Format("2006-01-02"),
			"ordinal", g.selector.Ordinal,
		)
		return false
	}

	return true
}

// loadCalendar загружает календарь праздников.
// Недоступный источник деградирует до "праздников нет".
func (g *Gate) loadCalendar(ctx context.Context) *domain.HolidayCalendar {
	if g.source == nil {
		return nil
	}

	calendar, err := g.source.Calendar(ctx, g.selector.Country, g.selector.Subdivision)
	if err != nil {
		g.logger.Warn("holiday calendar unavailable, proceeding with weekdays only",
			"country", g.selector.Country,
			"subdivision", g.selector.Subdivision,
			"error", err,
		)
		return nil
	}
	return calendar
}

// ShouldRun проверяет, является ли today ровно N-м рабочим днём месяца.
//
// Алгоритм: от первого календарного дня месяца идём вперёд по одному дню,
// увеличивая счётчик на каждом буднем дне вне календаря праздников,
// пока счётчик не достигнет ordinal. Гейт истинен только если достигнутый
// день в точности равен today — N-й или позже не считается.
func ShouldRun(today time.Time, sel domain.BusinessDaySelector, calendar *domain.HolidayCalendar) bool {
	if sel.Ordinal < 1 {
		return false
	}

	day := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	counted := 0

	for counted < sel.Ordinal {
		if isBusinessDay(day, calendar) {
			counted++
		}
		if counted < sel.Ordinal {
			day = day.AddDate(0, 0, 1)
		}
	}

	return sameDate(day, today)
}

// isBusinessDay — будний день, не входящий в календарь праздников.
func isBusinessDay(day time.Time, calendar *domain.HolidayCalendar) bool {
	wd := day.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !calendar.Contains(day)
}

// sameDate сравнивает даты без учёта времени.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
