package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных (виды спорта и площадки)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveSports получает все активные виды спорта, отсортированные по имени
func (r *Repository) ListActiveSports(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"image_url",
		"is_active",
		"created_at",
	).
		From("sports").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		var sport domain.Sport
		var createdAt sql.NullTime

		err := rows.Scan(
			&sport.ID,
			&sport.Name,
			&sport.Description,
			&sport.ImageURL,
			&sport.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveSports - scan row: %v", ErrScanRow, err)
		}

		sport.CreatedAt = createdAt.Time
		sports = append(sports, &sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// GetSportByName получает активный вид спорта по точному совпадению имени.
// При дублировании имен возвращается первая запись по (name, id).
func (r *Repository) GetSportByName(ctx context.Context, name string) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"image_url",
		"is_active",
		"created_at",
	).
		From("sports").
		Where(squirrel.Eq{"name": name, "is_active": true}).
		OrderBy("name ASC, id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByName - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sport.ID,
		&sport.Name,
		&sport.Description,
		&sport.ImageURL,
		&sport.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByName - scan sport: %v", ErrScanRow, err)
	}

	sport.CreatedAt = createdAt.Time
	return &sport, nil
}

// ListActiveVenues получает все активные площадки, отсортированные по имени
func (r *Repository) ListActiveVenues(ctx context.Context) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := venueSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveVenues - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveVenues - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// GetVenueByID получает площадку по ID
func (r *Repository) GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := venueSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - build select query: %v", ErrBuildQuery, err)
	}

	venue, err := scanVenueRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - scan venue: %v", ErrScanRow, err)
	}

	return venue, nil
}

// GetVenueByName получает активную площадку по точному совпадению имени.
// При дублировании имен возвращается первая запись по (name, id).
func (r *Repository) GetVenueByName(ctx context.Context, name string) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := venueSelect().
		Where(squirrel.Eq{"name": name, "is_active": true}).
		OrderBy("name ASC, id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByName - build select query: %v", ErrBuildQuery, err)
	}

	venue, err := scanVenueRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByName - scan venue: %v", ErrScanRow, err)
	}

	return venue, nil
}

// venueSelect общий SELECT по колонкам площадки
func venueSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"location",
		"image_url",
		"opening_hours",
		"capacity",
		"contact_number",
		"is_active",
		"created_at",
		"updated_at",
	).From("venues")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Description,
		&venue.Location,
		&venue.ImageURL,
		&venue.OpeningHours,
		&venue.Capacity,
		&venue.ContactNumber,
		&venue.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time
	return &venue, nil
}

func scanVenueRow(row *sql.Row) (*domain.Venue, error) {
	return scanVenue(row)
}
