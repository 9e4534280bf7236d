package receive_message

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// validateRequest проверяет входящее сообщение
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ChatID) == "" {
		return fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SenderID) == "" {
		return fmt.Errorf("%w: sender id is required", ErrInvalidInput)
	}
	// Ассистент пишет только через process_message
	if !req.SenderRole.IsValid() || req.SenderRole == domain.RoleAI {
		return fmt.Errorf("%w: invalid sender role %q", ErrInvalidInput, req.SenderRole)
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Content) > domain.MaxMessageLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
