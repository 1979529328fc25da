package domain

// Mode — режим выполнения процесса.
//
// Всё, что не production, считается dry-run для телеметрии и уведомлений:
// запись логируется, но наружу ничего не отправляется.
type Mode string

const (
	// ModeProduction — боевой режим: доставка статуса и уведомлений включена.
	ModeProduction Mode = "production"

	// ModeDevelop — режим разработки.
	ModeDevelop Mode = "develop"

	// ModeTest — тестовый режим.
	ModeTest Mode = "test"
)

// IsProduction возвращает true для боевого режима.
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// String возвращает строковое представление Mode.
func (m Mode) String() string {
	return string(m)
}

// ParseMode парсит строку в Mode.
// Неизвестное значение трактуется как develop — безопасный режим без доставки.
func ParseMode(s string) Mode {
	switch s {
	case "production":
		return ModeProduction
	case "develop":
		return ModeDevelop
	case "test":
		return ModeTest
	default:
		return ModeDevelop
	}
}
