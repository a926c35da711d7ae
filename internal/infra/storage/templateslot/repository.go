package templateslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий шаблонных слотов расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонных слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByCourtAndWeekday получает активные шаблонные слоты корта на день
// недели (0=воскресенье .. 6=суббота), отсортированные по времени начала
func (r *Repository) ListActiveByCourtAndWeekday(ctx context.Context, courtID int64, dayOfWeek int) ([]*domain.TemplateSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotSelect().
		Where(squirrel.Eq{
			"court_id":    courtID,
			"day_of_week": dayOfWeek,
			"is_active":   true,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCourtAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCourtAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByIDs получает шаблонные слоты по списку ID.
// Отсутствующие ID не являются ошибкой - вызывающая сторона сверяет
// количество результатов с количеством запрошенных.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.TemplateSlot, error) {
	if len(ids) == 0 {
		return []*domain.TemplateSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotSelect().
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func slotSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"court_id",
		"day_of_week",
		"start_time",
		"end_time",
		"price",
		"is_active",
	).From("template_slots")
}

// scanSlots сканирует результаты запроса в слайс шаблонных слотов
func scanSlots(rows *sql.Rows) ([]*domain.TemplateSlot, error) {
	slots := make([]*domain.TemplateSlot, 0)

	for rows.Next() {
		var slot domain.TemplateSlot

		err := rows.Scan(
			&slot.ID,
			&slot.CourtID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Price,
			&slot.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
