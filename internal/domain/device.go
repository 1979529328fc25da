package domain

import (
	"net"
	"os"
	"os/user"
)

// DeviceInfo — информация об устройстве, на котором упал процесс.
// Прикладывается к уведомлению о сбое.
type DeviceInfo struct {
	// User — имя пользователя ОС.
	User string `json:"user"`

	// Hostname — имя хоста.
	Hostname string `json:"hostname"`

	// IPAddress — IP-адрес хоста.
	IPAddress string `json:"ip_address"`
}

// CollectDeviceInfo собирает информацию о текущем устройстве.
//
// Сбор best-effort: недоступное поле остаётся пустой строкой,
// ошибка никогда не возвращается — уведомление о сбое не должно
// падать из-за диагностики.
func CollectDeviceInfo() DeviceInfo {
	var info DeviceInfo

	if u, err := user.Current(); err == nil {
		info.User = u.Username
	}

	hostname, err := os.Hostname()
	if err != nil {
		return info
	}
	info.Hostname = hostname

	if addrs, err := net.LookupHost(hostname); err == nil && len(addrs) > 0 {
		info.IPAddress = addrs[0]
	}

	return info
}
