package update_client

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

type ClientService interface {
	UpdateClient(
		ctx context.Context,
		barbershopID, clientID string,
		req *models.UpdateClientRequest,
	) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
