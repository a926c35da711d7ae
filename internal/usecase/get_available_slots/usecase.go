package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
)

// UseCase use case для получения расписания корта на дату
type UseCase struct {
	courtRepo    CourtRepository
	slotRepo     TemplateSlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo TemplateSlotRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Расписание корта задается шаблонными слотами по дням недели.
// Слот считается занятым на дату, если с ним пересекается хотя бы одно
// неотмененное бронирование. День без шаблонных слотов - закрытый день,
// возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s",
		req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем шаблонные слоты на день недели запрошенной даты
	dayOfWeek := int(req.Date.Weekday())
	slots, err := uc.slotRepo.ListActiveByCourtAndWeekday(ctx, req.CourtID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get template slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get template slots: %v", ErrInternal, err)
	}

	// Закрытый день: шаблонных слотов нет
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no template slots for court=%d on weekday=%d", req.CourtID, dayOfWeek)
		return &Response{
			CourtID: req.CourtID,
			Date:    req.Date,
			Slots:   []Slot{},
		}, nil
	}

	// 5. Получаем неотмененные бронирования корта на дату
	bookings, err := uc.bookingRepo.GetActiveByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность каждого слота
	marked := markAvailability(slots, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for court=%d, date=%s",
		len(marked), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   marked,
	}, nil
}
