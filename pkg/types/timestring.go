// Package types contains small value types shared across layers.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени "HH:MM" (24-часовой)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrScanTimeString возвращается при ошибке чтения времени из БД
	ErrScanTimeString = errors.New("failed to scan time string")
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It deliberately carries no date and no timezone: booking slots are
// local to the venue and are combined with a separate booking_date.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// parse возвращает время как time.Time на нулевой дате
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// IsBefore возвращает true, если t строго раньше other.
// Некорректные значения считаются "не раньше" - валидация должна
// выполняться до сравнений.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время через minutes минут.
// Переход через полночь не поддерживается - слоты не пересекают границу дня.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	result := parsed.Add(time.Duration(minutes) * time.Minute)
	return TimeString(result.Format(timeLayout)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres колонка TIME приходит как "HH:MM:SS" - секунды отбрасываются.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrScanTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScanTimeString, err)
	}
	*t = parsed
	return nil
}
