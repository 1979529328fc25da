// Package cli реализует команды операторского CLI.
//
// Команды:
//   - gate check  — является ли дата N-м рабочим днём месяца
//   - status list — последние строки статусов из аналитического хранилища
//   - status last — последний статус одного процесса
//   - notify test — пробное уведомление в канал сбоев
package cli
