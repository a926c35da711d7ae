package models

import (
	"errors"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetVenueBookingsRequest запрос на получение бронирований площадки
type GetVenueBookingsRequest struct {
	UserID           int64      `json:"userId"`
	VenueID          int64      `json:"venueId"`
	CourtID          *int64     `json:"courtId,omitempty"`          // Фильтр по корту (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetVenueBookingsRequest) ToDomainFilter() (domain.VenueBookingsFilter, error) {
	filter := domain.VenueBookingsFilter{
		VenueID:          r.VenueID,
		CourtID:          r.CourtID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	CourtID     int64   `json:"courtId"`
	UserID      *int64  `json:"userId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:00"
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	BatchRef    string  `json:"batchRef"`

	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		CourtID:     b.CourtID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		BatchRef:    b.BatchRef,
		GuestName:   b.GuestName,
		GuestPhone:  b.GuestPhone,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
