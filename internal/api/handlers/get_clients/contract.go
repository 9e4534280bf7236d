package get_clients

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

type ClientService interface {
	ListClients(ctx context.Context, barbershopID string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
