package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
)

type ClientService interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.RegisterClientResponse], error)
	GetClient(ctx context.Context, cpf string) (commons.Response[models.ClientResponse], error)
}
