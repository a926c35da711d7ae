package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кортами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"sport_id",
		"name",
		"is_active",
		"created_at",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.VenueID,
		&court.SportID,
		&court.Name,
		&court.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	return &court, nil
}

// ListByVenueAndSport получает активные корты площадки для вида спорта,
// отсортированные по имени
func (r *Repository) ListByVenueAndSport(ctx context.Context, venueID, sportID int64) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"sport_id",
		"name",
		"is_active",
		"created_at",
	).
		From("courts").
		Where(squirrel.Eq{
			"venue_id":  venueID,
			"sport_id":  sportID,
			"is_active": true,
		}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndSport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndSport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		var createdAt sql.NullTime

		err := rows.Scan(
			&court.ID,
			&court.VenueID,
			&court.SportID,
			&court.Name,
			&court.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenueAndSport - scan row: %v", ErrScanRow, err)
		}

		court.CreatedAt = createdAt.Time
		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndSport - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}
