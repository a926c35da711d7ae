package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
	"github.com/m04kA/SportHub-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	courtRepo      CourtRepository
	venueAdminRepo VenueAdminRepository
	publisher      EventPublisher
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	venueAdminRepo VenueAdminRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		courtRepo:      courtRepo,
		venueAdminRepo: venueAdminRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является администратором площадки
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVenueBookings получает бронирования площадки с гибкой фильтрацией
// Поддерживает фильтрацию по корту, периоду, статусу и включению отмененных бронирований
// Доступно только администраторам площадки
//
// Примеры использования:
// - Все активные бронирования: GetVenueBookings(ctx, &GetVenueBookingsRequest{VenueID: 123, UserID: 456})
// - Бронирования на конкретном корте: указать CourtID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отмененные: IncludeCancelled = true
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetVenueBookings: fetching bookings for venue=%d, user=%d", req.VenueID, req.UserID)
	if req.CourtID != nil {
		logMsg += fmt.Sprintf(", court=%d", *req.CourtID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа администратора
	if err := s.checkAdminAccess(ctx, req.VenueID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVenueBookings: invalid filter for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenueBookings: successfully fetched %d bookings for venue=%d", len(bookings), req.VenueID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// администратор площадки - любое бронирование на своей площадке
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Проверяем права: владелец или администратор площадки
	if booking.UserID == nil || *booking.UserID != req.UserID {
		if err := s.checkVenueAccessByCourt(ctx, booking.CourtID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	// Отменяем бронирование
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.publishStatusChanged(ctx, bookingID, booking.Status, domain.StatusCancelled, req.UserID)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только администраторам площадки
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только администратор площадки)
	if err := s.checkVenueAccessByCourt(ctx, booking.CourtID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	// Проверяем допустимость перехода статуса
	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.publishStatusChanged(ctx, bookingID, booking.Status, newStatus, req.UserID)

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он администратор площадки
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешен
	if booking.UserID != nil && *booking.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь администратором площадки
	if err := s.checkVenueAccessByCourt(ctx, booking.CourtID, userID); err != nil {
		// Ошибка уже залогирована в checkVenueAccessByCourt
		return ErrAccessDenied
	}

	return nil
}

// checkVenueAccessByCourt проверяет административный доступ к площадке корта
func (s *Service) checkVenueAccessByCourt(ctx context.Context, courtID int64, userID int64) error {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("checkVenueAccessByCourt: court id=%d not found", courtID)
			return ErrAccessDenied
		}
		s.logger.Error("checkVenueAccessByCourt: failed to get court id=%d: %v", courtID, err)
		return fmt.Errorf("%w: checkVenueAccessByCourt - failed to get court: %v", ErrInternal, err)
	}

	return s.checkAdminAccess(ctx, court.VenueID, userID)
}

// checkAdminAccess проверяет, что пользователь является администратором площадки
// или супер-администратором
func (s *Service) checkAdminAccess(ctx context.Context, venueID int64, userID int64) error {
	isAdmin, err := s.venueAdminRepo.IsVenueAdmin(ctx, userID, venueID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to check admin for venue=%d user=%d: %v", venueID, userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to check venue admin: %v", ErrInternal, err)
	}
	if isAdmin {
		s.logger.Info("checkAdminAccess: user=%d is admin of venue=%d", userID, venueID)
		return nil
	}

	isSuper, err := s.venueAdminRepo.IsSuperAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to check super admin for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to check super admin: %v", ErrInternal, err)
	}
	if isSuper {
		s.logger.Info("checkAdminAccess: user=%d is super admin", userID)
		return nil
	}

	s.logger.Warn("checkAdminAccess: user=%d is not an admin of venue=%d", userID, venueID)
	return ErrAccessDenied
}

// publishStatusChanged публикует событие смены статуса.
// Ошибка публикации не прерывает основной поток - событие теряется,
// а ошибка уходит в лог.
func (s *Service) publishStatusChanged(ctx context.Context, bookingID int64, oldStatus, newStatus domain.BookingStatus, changedBy int64) {
	if s.publisher == nil {
		return
	}

	event := events.BookingStatusChangedEvent{
		BookingID: bookingID,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		ChangedBy: changedBy,
		ChangedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishBookingStatusChanged(ctx, event); err != nil {
		s.logger.Error("publishStatusChanged: failed to publish event for booking id=%d: %v", bookingID, err)
	}
}
