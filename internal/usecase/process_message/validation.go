package process_message

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brunocamarg0/trim-squire/pkg/types"
)

var (
	errDateFormat = errors.New("unrecognized date")
	errDateInPast = errors.New("date is in the past")
	errTimeFormat = errors.New("unrecognized time")
	errTimeRange  = errors.New("time is out of range")
)

var (
	todayKeywords    = []string{"hoje", "today"}
	tomorrowKeywords = []string{"amanhã", "amanha", "tomorrow"}

	// Сначала бразильский формат, затем прочие распространенные
	dateLayouts = []string{
		"02/01/2006",
		"2/1/2006",
		"2006-01-02",
		"2006/01/02",
		time.RFC3339,
		"2 Jan 2006",
		"2 January 2006",
		"Jan 2 2006",
		"Jan 2, 2006",
		"January 2 2006",
		"January 2, 2006",
	}
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ChatID) == "" {
		return fmt.Errorf("%w: chatID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BarbershopID) == "" {
		return fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientID) == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	return nil
}

// parseDate разбирает дату, введенную клиентом, в часовом поясе loc.
// Возвращает полночь выбранного дня.
func parseDate(message string, now time.Time, loc *time.Location) (time.Time, error) {
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	lower := normalize(message)
	if containsAny(lower, todayKeywords) {
		return today, nil
	}
	if containsAny(lower, tomorrowKeywords) {
		return today.AddDate(0, 0, 1), nil
	}

	raw := strings.TrimSpace(message)
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, raw, loc)
		if err != nil {
			continue
		}
		parsed = parsed.In(loc)
		date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)
		if date.Before(today) {
			return time.Time{}, errDateInPast
		}
		return date, nil
	}

	return time.Time{}, errDateFormat
}

// parseClock разбирает время вида "14:30", "14h30" или "1430"
func parseClock(message string) (types.TimeString, error) {
	normalized := strings.NewReplacer("h", ":", "H", ":").Replace(message)
	normalized = strings.Join(strings.Fields(normalized), "")

	if len(normalized) == 4 && !strings.Contains(normalized, ":") {
		normalized = normalized[:2] + ":" + normalized[2:]
	}

	parts := strings.Split(normalized, ":")
	if len(parts) != 2 {
		return "", errTimeFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", errTimeFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", errTimeFormat
	}

	clock, err := types.NewTimeStringFromClock(hour, minute)
	if err != nil {
		return "", errTimeRange
	}
	return clock, nil
}

// selectOption выбирает вариант по номеру из списка (с 1) или по вхождению в название
func selectOption(message string, names []string) (int, bool) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= len(names) {
		return n - 1, true
	}

	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i, true
		}
	}
	return 0, false
}
