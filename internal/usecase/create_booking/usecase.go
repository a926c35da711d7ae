package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
)

// UseCase use case для создания пакета бронирований
type UseCase struct {
	courtRepo    CourtRepository
	slotRepo     TemplateSlotRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo TemplateSlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания пакета бронирований
//
// Все слоты пакета создаются в одной сериализуемой транзакции: либо
// бронируется весь пакет, либо ничего. Конфликт по любому из слотов
// откатывает транзакцию целиком с ошибкой ErrSlotTaken.
// Уникальный индекс по (court_id, booking_date, start_time) для
// неотмененных бронирований остается последней линией защиты от гонок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, user=%v, date=%s, slots=%v",
		req.CourtID, req.UserID, req.Date.Format(domain.DateFormat), req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	batchRef := uuid.NewString()

	// Переменные для хранения результата
	var created []*domain.Booking
	var slots []*domain.TemplateSlot

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем запрошенные шаблонные слоты
		found, err := uc.slotRepo.GetByIDs(txCtx, req.SlotIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get template slots: %v", err)
			return fmt.Errorf("%w: failed to get template slots: %w", ErrInternal, err)
		}

		// 4.2. Все слоты должны существовать, быть активными,
		// принадлежать корту и соответствовать дню недели даты
		if err := validateSlots(found, req.SlotIDs, req.CourtID, req.Date); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// Сортируем по времени начала, чтобы пакет создавался в порядке слотов
		sort.Slice(found, func(i, j int) bool {
			return found[i].StartTime.IsBefore(found[j].StartTime)
		})
		slots = found

		// 4.3. Получаем существующие бронирования с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetActiveByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.4. Проверяем каждый слот на пересечение с существующими бронированиями
		for _, slot := range slots {
			if conflict := findOverlappingBooking(slot, existing); conflict != nil {
				uc.logger.Warn("CreateBooking: slot id=%d overlaps booking id=%d", slot.ID, conflict.ID)
				return fmt.Errorf("%w: slot %s-%s", ErrSlotTaken, slot.StartTime, slot.EndTime)
			}
		}

		// 4.5. Создаем бронирование на каждый слот пакета
		created = make([]*domain.Booking, 0, len(slots))
		for _, slot := range slots {
			booking := &domain.Booking{
				CourtID:     req.CourtID,
				UserID:      req.UserID,
				BookingDate: req.Date,
				StartTime:   slot.StartTime,
				EndTime:     slot.EndTime,
				TotalPrice:  slot.Price,
				Status:      domain.StatusPending,
				BatchRef:    batchRef,
				GuestName:   req.GuestName,
				GuestPhone:  req.GuestPhone,
			}

			saved, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				// Нарушение уникального индекса - проигранная гонка за слот:
				// другая транзакция успела закоммитить бронирование раньше
				if errors.Is(err, bookingRepo.ErrSlotTaken) {
					uc.logger.Warn("CreateBooking: slot id=%d lost to concurrent booking: %v", slot.ID, err)
					return fmt.Errorf("%w: slot %s-%s", ErrSlotTaken, slot.StartTime, slot.EndTime)
				}
				uc.logger.Error("CreateBooking: failed to create booking for slot id=%d: %v", slot.ID, err)
				return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
			}

			created = append(created, saved)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %d bookings, batch=%s", len(created), batchRef)

	resp := buildResponse(req, batchRef, slots, created)

	uc.publishCreated(ctx, resp)

	return resp, nil
}

// buildResponse собирает ответ из созданных бронирований
func buildResponse(req *Request, batchRef string, slots []*domain.TemplateSlot, created []*domain.Booking) *Response {
	resp := &Response{
		BatchRef:    batchRef,
		CourtID:     req.CourtID,
		UserID:      req.UserID,
		BookingDate: req.Date,
		Status:      string(domain.StatusPending),
		Bookings:    make([]CreatedBooking, len(created)),
	}

	for i, booking := range created {
		resp.TotalPrice += booking.TotalPrice
		resp.Bookings[i] = CreatedBooking{
			ID:        booking.ID,
			SlotID:    slots[i].ID,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
			Price:     booking.TotalPrice,
		}
	}

	return resp
}

// publishCreated публикует событие создания пакета после коммита транзакции.
// Ошибка публикации не прерывает основной поток - событие теряется,
// а ошибка уходит в лог.
func (uc *UseCase) publishCreated(ctx context.Context, resp *Response) {
	if uc.publisher == nil {
		return
	}

	event := events.BookingCreatedEvent{
		BatchRef:    resp.BatchRef,
		CourtID:     resp.CourtID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		BookingIDs:  make([]int64, len(resp.Bookings)),
		TotalPrice:  resp.TotalPrice,
		CreatedAt:   time.Now().UTC(),
	}
	for i, b := range resp.Bookings {
		event.BookingIDs[i] = b.ID
	}

	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for batch=%s: %v", resp.BatchRef, err)
	}
}
