package clients

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

const maxPhoneLength = 30

func validateClient(c *domain.Client, now time.Time) error {
	if strings.TrimSpace(c.BarbershopID) == "" {
		return fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(c.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(c.Phone) > maxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, maxPhoneLength)
	}
	if c.Email != nil {
		if _, err := mail.ParseAddress(*c.Email); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *c.Email)
		}
	}
	if c.DateOfBirth != nil && c.DateOfBirth.After(now) {
		return fmt.Errorf("%w: date of birth is in the future", ErrInvalidInput)
	}
	if c.Notes != nil && utf8.RuneCountInString(*c.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
