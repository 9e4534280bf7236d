package catalog

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Максимальная длительность одной услуги
const maxServiceMinutes = 8 * 60

func validateService(s *domain.Service) error {
	if strings.TrimSpace(s.BarbershopID) == "" {
		return fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}
	if err := validateName(s.Name); err != nil {
		return err
	}
	if utf8.RuneCountInString(s.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if s.DurationMinutes <= 0 || s.DurationMinutes > maxServiceMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, maxServiceMinutes)
	}
	if utf8.RuneCountInString(s.Category) > domain.MaxNameLength {
		return fmt.Errorf("%w: category exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

func validateBarber(b *domain.Barber) error {
	if strings.TrimSpace(b.BarbershopID) == "" {
		return fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}
	if err := validateName(b.Name); err != nil {
		return err
	}
	if b.Email != nil {
		if _, err := mail.ParseAddress(*b.Email); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *b.Email)
		}
	}
	if b.Phone != nil && strings.TrimSpace(*b.Phone) == "" {
		return fmt.Errorf("%w: phone is blank", ErrInvalidInput)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}
