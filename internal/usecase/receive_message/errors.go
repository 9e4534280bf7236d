package receive_message

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("receive_message: invalid input data")

	// ErrChatNotFound возвращается, когда чат не найден
	ErrChatNotFound = errors.New("receive_message: chat not found")

	// ErrChatArchived возвращается при попытке писать в архивный чат
	ErrChatArchived = errors.New("receive_message: chat is archived")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("receive_message: internal error")
)
