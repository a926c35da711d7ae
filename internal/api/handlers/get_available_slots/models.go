package get_available_slots

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SportHub-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourtID int64           `json:"courtId"`
	Date    string          `json:"date"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота расписания
type AvailableSlot struct {
	SlotID    int64   `json:"slotId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotID:    slot.SlotID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Price:     slot.Price,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(courtID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CourtID: courtID,
		Date:    date,
	}, nil
}
