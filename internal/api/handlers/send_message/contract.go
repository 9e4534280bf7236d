package send_message

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/usecase/receive_message"
)

type UseCase interface {
	Execute(ctx context.Context, req *receive_message.Request) (*receive_message.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
