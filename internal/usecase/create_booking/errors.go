package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotFound возвращается, когда один из запрошенных слотов не найден
	ErrSlotNotFound = errors.New("create_booking: template slot not found")

	// ErrSlotMismatch возвращается, когда слот не принадлежит корту
	// или не относится к дню недели запрошенной даты
	ErrSlotMismatch = errors.New("create_booking: slot does not match court or date")

	// ErrSlotTaken возвращается, когда хотя бы один из слотов уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrGuestInfoRequired возвращается, когда для гостевого бронирования
	// не указаны имя и телефон
	ErrGuestInfoRequired = errors.New("create_booking: guest name and phone are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
