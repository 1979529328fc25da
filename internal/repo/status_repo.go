package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Vigia/internal/domain"
)

// statusTable — таблица назначения аналитических строк.
// Имена колонок зафиксированы контрактом аналитического хранилища.
const statusTable = "execution_status"

// StatusRepo — репозиторий денормализованных строк статусов.
//
// Реализует report.StatusStore: одна строка на запуск плюс
// обслуживание таблицы назначения.
type StatusRepo struct {
	pool *pgxpool.Pool
}

// NewStatusRepo создаёт новый StatusRepo.
func NewStatusRepo(pool *pgxpool.Pool) *StatusRepo {
	return &StatusRepo{pool: pool}
}

// Insert пишет одну денормализованную строку статуса.
func (r *StatusRepo) Insert(ctx context.Context, rec *domain.StatusRecord) error {
	query := `
		INSERT INTO execution_status (data_execucao, projeto, falha, tipo_execucao, quant_total, quant_sucesso)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.DateTime,
		rec.ProcessName,
		rec.Failed,
		rec.Mode.String(),
		rec.Parameters.Total,
		rec.Parameters.Success,
	)
	if err != nil {
		return fmt.Errorf("insert status row: %w", err)
	}
	return nil
}

// Optimize запускает обслуживание таблицы назначения.
// Аналог OPTIMIZE аналитического хранилища для Postgres — ANALYZE.
func (r *StatusRepo) Optimize(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "ANALYZE "+statusTable); err != nil {
		return fmt.Errorf("analyze %s: %w", statusTable, err)
	}
	return nil
}

// StatusRow — строка статуса, прочитанная из хранилища.
type StatusRow struct {
	ExecutedAt string `json:"data_execucao"`
	Project    string `json:"projeto"`
	Failed     bool   `json:"falha"`
	Mode       string `json:"tipo_execucao"`
	Total      int    `json:"quant_total"`
	Success    int    `json:"quant_sucesso"`
}

// LastFor возвращает последнюю строку статуса для процесса.
// Процесс без единого запуска — ErrNotFound.
func (r *StatusRepo) LastFor(ctx context.Context, project string) (StatusRow, error) {
	query := `
		SELECT data_execucao::text, projeto, falha, tipo_execucao, quant_total, quant_sucesso
		FROM execution_status
		WHERE projeto = $1
		ORDER BY data_execucao DESC
		LIMIT 1
	`
	var row StatusRow
	err := r.pool.QueryRow(ctx, query, project).Scan(
		&row.ExecutedAt,
		&row.Project,
		&row.Failed,
		&row.Mode,
		&row.Total,
		&row.Success,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return StatusRow{}, fmt.Errorf("status for %q: %w", project, ErrNotFound)
	}
	if err != nil {
		return StatusRow{}, fmt.Errorf("last status row: %w", err)
	}
	return row, nil
}

// ListRecent возвращает последние строки статусов (для CLI).
func (r *StatusRepo) ListRecent(ctx context.Context, limit int) ([]StatusRow, error) {
	query := `
		SELECT data_execucao::text, projeto, falha, tipo_execucao, quant_total, quant_sucesso
		FROM execution_status
		ORDER BY data_execucao DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list status rows: %w", err)
	}
	defer rows.Close()

	var result []StatusRow
	for rows.Next() {
		var row StatusRow
		err := rows.Scan(
			&row.ExecutedAt,
			&row.Project,
			&row.Failed,
			&row.Mode,
			&row.Total,
			&row.Success,
		)
		if err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
