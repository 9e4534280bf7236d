package conversation

import "errors"

var (
	// ErrConversationNotFound возвращается, когда контекста диалога нет или он истек
	ErrConversationNotFound = errors.New("conversation.store: conversation not found")

	// ErrInvalidConversation возвращается при попытке сохранить контекст без ID чата
	ErrInvalidConversation = errors.New("conversation.store: invalid conversation")
)
