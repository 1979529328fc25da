package domain

import "time"

// dateLayout — ключ календаря: дата без времени.
const dateLayout = "2006-01-02"

// BusinessDaySelector — параметры выбора N-го рабочего дня месяца.
type BusinessDaySelector struct {
	// Ordinal — порядковый номер рабочего дня (1-based).
	Ordinal int

	// Country — код страны (например, "BR").
	Country string

	// Subdivision — код региона (например, "GO").
	Subdivision string
}

// HolidayCalendar — набор праздничных дат для страны/региона.
//
// Внешние данные, только для чтения. Пустой или nil календарь
// означает "праздников нет" — гейт работает только по будням.
type HolidayCalendar struct {
	days map[string]string // дата → название праздника
}

// Holiday — одна праздничная дата.
type Holiday struct {
	Date time.Time
	Name string
}

// NewHolidayCalendar создаёт календарь из списка праздников.
func NewHolidayCalendar(holidays []Holiday) *HolidayCalendar {
	days := make(map[string]string, len(holidays))
	for _, h := range holidays {
		days[h.Date.Format(dateLayout)] = h.Name
	}
	return &HolidayCalendar{days: days}
}

// Contains проверяет, является ли день праздничным.
// Nil-календарь безопасен и означает отсутствие праздников.
func (c *HolidayCalendar) Contains(day time.Time) bool {
	if c == nil {
		return false
	}
	_, ok := c.days[day.Format(dateLayout)]
	return ok
}

// Len возвращает количество праздничных дат.
func (c *HolidayCalendar) Len() int {
	if c == nil {
		return 0
	}
	return len(c.days)
}
