package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ClientEmail string           // Email клиента
	ServiceName string           // Название услуги из каталога
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала слота (например, "14:00")
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
// Бронирование записывается в календарь как событие типа appointment
type Response struct {
	EventID         string           // ID созданного события
	Title           string           // Заголовок события
	ServiceName     string           // Название услуги
	ServicePrice    float64          // Цена услуги
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах

	CreatedAt time.Time // Время создания
}
