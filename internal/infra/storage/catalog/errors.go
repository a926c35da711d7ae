package catalog

import "errors"

var (
	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("catalog.repository: sport not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("catalog.repository: venue not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
