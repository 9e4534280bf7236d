package process_message

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("process_message: invalid input data")

	// ErrIncompleteDraft возвращается, если на подтверждение пришел черновик без обязательных полей
	ErrIncompleteDraft = errors.New("process_message: booking draft is incomplete")

	// ErrServiceUnavailable возвращается, если выбранная услуга больше не активна
	ErrServiceUnavailable = errors.New("process_message: selected service is no longer available")

	// ErrSendMessage возвращается, когда ответ ассистента не удалось отправить в чат
	ErrSendMessage = errors.New("process_message: failed to send reply")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_message: internal error")
)
