package get_available_slots

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата, на которую запрашивались слоты
	Slots   []Slot    // Слоты в порядке времени начала
}

// Slot модель слота расписания
type Slot struct {
	SlotID    int64            // ID шаблонного слота
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота
	Price     float64          // Цена за слот
	Available bool             // Свободен ли слот на запрошенную дату
}
