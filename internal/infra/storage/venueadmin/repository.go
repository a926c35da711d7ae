package venueadmin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для проверки административных прав на площадки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория админов площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsVenueAdmin проверяет, является ли пользователь администратором площадки
func (r *Repository) IsVenueAdmin(ctx context.Context, userID, venueID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("venue_admins").
		Where(squirrel.Eq{"user_id": userID, "venue_id": venueID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsVenueAdmin - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsVenueAdmin - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// IsSuperAdmin проверяет, имеет ли пользователь роль супер-администратора
func (r *Repository) IsSuperAdmin(ctx context.Context, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID, "role": "super_admin"}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsSuperAdmin - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSuperAdmin - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
