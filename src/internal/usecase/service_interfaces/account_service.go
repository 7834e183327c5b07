package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string, agencyNumber string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	SignIn(ctx context.Context, req models.SignInRequest) (commons.Response[models.SignInResponse], error)
	GetStatement(ctx context.Context, accountNumber string, agencyNumber string) (commons.Response[models.StatementResponse], error)
	ListTransactions(ctx context.Context, accountNumber string, agencyNumber string, transactionType string) (commons.Response[[]models.TransactionResponse], error)
}
