package chats

import "errors"

var (
	// ErrChatNotFound возвращается, когда чат не найден
	ErrChatNotFound = errors.New("chats: chat not found")

	// ErrChatArchived возвращается при попытке писать в архивный чат
	ErrChatArchived = errors.New("chats: chat is archived")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("chats: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("chats: internal error")
)
