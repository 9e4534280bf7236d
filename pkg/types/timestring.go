package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	minutesPerHour = 60
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString время суток в формате HH:MM (24 часа)
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromClock создает TimeString из часов и минут
func NewTimeStringFromClock(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hour, minute)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*minutesPerHour + parsed.Minute(), nil
}

// AddMinutes прибавляет минуты с переходом через полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	start, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := ((start+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour)), nil
}

// Scan реализует sql.Scanner (поддерживает TEXT и TIME колонки)
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}

	// TIME колонка отдается как HH:MM:SS
	if len(raw) > len(timeLayout) {
		raw = raw[:len(timeLayout)]
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
