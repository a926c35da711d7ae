package templateslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда шаблонный слот не найден
	ErrSlotNotFound = errors.New("templateslot.repository: template slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("templateslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("templateslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("templateslot.repository: failed to scan row")
)
