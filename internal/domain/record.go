package domain

import (
	"time"

	"github.com/google/uuid"
)

// Totals — счётчики обработанных элементов за один запуск.
//
// Задача может обработать пакет элементов и отчитаться о частичном успехе
// даже без исключения: расхождение Total и Success — это нарушение
// инварианта, которое StatusRecord помечает как сбой.
type Totals struct {
	// Total — сколько элементов должно было быть обработано.
	Total int `json:"totalCount"`

	// Success — сколько элементов обработано успешно.
	Success int `json:"successCount"`
}

// StatusRecord — структурированный итог одного оркестрированного запуска.
//
// Сериализуется в JSON для webhook и денормализуется в строку
// аналитического хранилища (см. repo.StatusRepo).
type StatusRecord struct {
	// RunID — уникальный идентификатор запуска.
	RunID uuid.UUID `json:"runId"`

	// ProcessName — имя процесса/бота.
	ProcessName string `json:"processName"`

	// DateTime — момент формирования записи.
	DateTime time.Time `json:"dateTime"`

	// Mode — режим выполнения.
	Mode Mode `json:"mode"`

	// Parameters — счётчики запуска.
	Parameters Totals `json:"parameters"`

	// Failed — итоговый признак сбоя.
	Failed bool `json:"fail"`
}

// NewStatusRecord создаёт StatusRecord с применённым инвариантом сбоя.
//
// Failed выставляется в true, если запуск упал после всех попыток ИЛИ
// если счётчики разошлись (Total != Success) — явная проверка инварианта,
// а не только факт исключения. Так задача отчитывается о частичном сбое
// пакета, даже когда ни одна попытка не упала; флаг вызывающей стороны
// не может отменить нарушение.
func NewStatusRecord(process string, mode Mode, totals Totals, runFailed bool) *StatusRecord {
	return &StatusRecord{
		RunID:       uuid.New(),
		ProcessName: process,
		DateTime:    time.Now(),
		Mode:        mode,
		Parameters:  totals,
		Failed:      runFailed || totals.Total != totals.Success,
	}
}
