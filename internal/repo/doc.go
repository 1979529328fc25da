// Package repo реализует доступ к PostgreSQL.
//
// Структура:
//   - db.go           — пул соединений pgx
//   - status_repo.go  — денормализованные строки статусов запусков
//   - holiday_repo.go — календарь праздников для гейта рабочих дней
//   - errors.go       — общие sentinel-ошибки
package repo
