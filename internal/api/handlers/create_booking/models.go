package create_booking

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	createBooking "github.com/m04kA/SportHub-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Авторизованный пользователь определяется заголовком X-User-ID,
// гость передает guestName и guestPhone
type CreateBookingRequest struct {
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	SlotIDs     []int64 `json:"slotIds"`
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
}

// BookingBatchResponse HTTP response model
type BookingBatchResponse struct {
	BatchRef    string           `json:"batchRef"`
	CourtID     int64            `json:"courtId"`
	UserID      *int64           `json:"userId,omitempty"`
	BookingDate string           `json:"bookingDate"`
	Status      string           `json:"status"`
	TotalPrice  float64          `json:"totalPrice"`
	Bookings    []CreatedBooking `json:"bookings"`
}

// CreatedBooking созданное бронирование одного слота
type CreatedBooking struct {
	ID        int64   `json:"id"`
	SlotID    int64   `json:"slotId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CourtID:    r.CourtID,
		UserID:     userID,
		Date:       bookingDate,
		SlotIDs:    r.SlotIDs,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingBatchResponse {
	bookings := make([]CreatedBooking, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = CreatedBooking{
			ID:        b.ID,
			SlotID:    b.SlotID,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Price:     b.Price,
		}
	}

	return &BookingBatchResponse{
		BatchRef:    resp.BatchRef,
		CourtID:     resp.CourtID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		Status:      resp.Status,
		TotalPrice:  resp.TotalPrice,
		Bookings:    bookings,
	}
}
