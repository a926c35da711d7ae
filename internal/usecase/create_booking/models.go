package create_booking

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Либо UserID, либо пара GuestName/GuestPhone должны быть заполнены
type Request struct {
	CourtID    int64     // ID корта
	UserID     *int64    // ID пользователя (nil для гостевого бронирования)
	Date       time.Time // Дата бронирования (без времени)
	SlotIDs    []int64   // ID шаблонных слотов, которые бронируются
	GuestName  *string   // Имя гостя (для гостевого бронирования)
	GuestPhone *string   // Телефон гостя (для гостевого бронирования)
}

// Response модель ответа с созданным пакетом бронирований
type Response struct {
	BatchRef    string           // Ссылка пакета, общая для всех созданных бронирований
	CourtID     int64            // ID корта
	UserID      *int64           // ID пользователя
	BookingDate time.Time        // Дата бронирования
	Status      string           // Статус созданных бронирований
	TotalPrice  float64          // Суммарная цена пакета
	Bookings    []CreatedBooking // Созданные бронирования в порядке времени начала
}

// CreatedBooking созданное бронирование одного слота
type CreatedBooking struct {
	ID        int64            // ID бронирования
	SlotID    int64            // ID шаблонного слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Price     float64          // Цена слота
}
