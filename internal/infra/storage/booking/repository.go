package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres при нарушении уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - пакетное
// создание бронирований обязано выполняться в сериализуемой транзакции,
// чтобы весь пакет создавался атомарно.
//
// Нарушение частичного уникального индекса по (court_id, booking_date,
// start_time) для неотмененных статусов транслируется в ErrSlotTaken -
// это серверный сигнал двойного бронирования, клиентская проверка
// доступности остается лишь подсказкой для UI.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"court_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"total_price",
			"status",
			"batch_ref",
			"guest_name",
			"guest_phone",
		).
		Values(
			booking.CourtID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.TotalPrice,
			booking.Status,
			booking.BatchRef,
			booking.GuestName,
			booking.GuestPhone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: court=%d date=%s time=%s",
				ErrSlotTaken, booking.CourtID,
				booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := bookingSelect().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByCourtAndDate получает бронирования корта на дату в статусах,
// занимающих слот (domain.ActiveStatuses), отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE - так пакетное создание
// бронирований блокирует конкурирующие проверки доступности.
func (r *Repository) GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := bookingSelect().
		Where(squirrel.Eq{"court_id": courtID, "booking_date": date}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCourtAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByVenueWithFilter получает бронирования площадки с гибкой фильтрацией.
// Поддерживает фильтрацию по корту, периоду, статусу и включению
// отмененных бронирований. Используется админ-панелью площадки.
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumnsPrefixed("b")...).
		From("bookings b").
		Join("courts c ON c.id = b.court_id").
		Where(squirrel.Eq{"c.venue_id": filter.VenueID})

	// Фильтрация по корту (если указан)
	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.court_id": *filter.CourtID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)})
	}

	// Для конкретной даты сортируем по времени начала, иначе - сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("b.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.booking_date DESC, b.start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"court_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"total_price",
	"status",
	"batch_ref",
	"guest_name",
	"guest_phone",
	"created_at",
	"updated_at",
}

func bookingSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).From("bookings")
}

func bookingColumnsPrefixed(alias string) []string {
	cols := make([]string, len(bookingColumns))
	for i, c := range bookingColumns {
		cols[i] = alias + "." + c
	}
	return cols
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var userID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&userID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalPrice,
		&booking.Status,
		&booking.BatchRef,
		&booking.GuestName,
		&booking.GuestPhone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		booking.UserID = &userID.Int64
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
