package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Vigia/internal/domain"
)

// HolidayRepo — репозиторий календаря праздников.
//
// Реализует gate.CalendarSource. Пустой результат — валидный ответ:
// гейт деградирует до правила "только будни".
type HolidayRepo struct {
	pool *pgxpool.Pool
}

// NewHolidayRepo создаёт новый HolidayRepo.
func NewHolidayRepo(pool *pgxpool.Pool) *HolidayRepo {
	return &HolidayRepo{pool: pool}
}

// Calendar возвращает календарь праздников для страны/региона.
// Региональные праздники (subdivision) добавляются к национальным
// (строки с пустым subdivision).
func (r *HolidayRepo) Calendar(ctx context.Context, country, subdivision string) (*domain.HolidayCalendar, error) {
	query := `
		SELECT day, name
		FROM holidays
		WHERE country = $1 AND (subdivision = '' OR subdivision = $2)
	`
	rows, err := r.pool.Query(ctx, query, country, subdivision)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var day time.Time
		var name string
		if err := rows.Scan(&day, &name); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, domain.Holiday{Date: day, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.NewHolidayCalendar(holidays), nil
}
