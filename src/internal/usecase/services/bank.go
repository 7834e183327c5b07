package services

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
	"github.com/shopspring/decimal"
)

type ClientRegistry interface {
	RegisterClient(ctx context.Context, client *domain.Client) (bool, error)
	SearchClient(ctx context.Context, cpf domain.CPF) (*domain.Client, error)
	AccountsOf(ctx context.Context, cpf domain.CPF) ([]domain.AccountSummary, error)
}

type AccountRegistry interface {
	Agency() domain.AgencyNumber
	SearchClient(ctx context.Context, cpf domain.CPF) (*domain.Client, error)
	CreateAccount(ctx context.Context, client *domain.Client) (*domain.Account, error)
	SearchAccount(ctx context.Context, ref usecase.AccountRef) (*domain.Account, error)
	SignIn(ctx context.Context, cpf domain.CPF, ref usecase.AccountRef) (*domain.Account, error)
	SignInWithPin(ctx context.Context, cpf domain.CPF, ref usecase.AccountRef, pin string) (*domain.Account, error)
	Summary(ctx context.Context, ref usecase.AccountRef) (domain.AccountSummary, error)
	Accounts(ctx context.Context) ([]domain.AccountSummary, error)
	Statement(ctx context.Context, ref usecase.AccountRef) (domain.Statement, error)
	Transactions(ctx context.Context, ref usecase.AccountRef, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type Ledger interface {
	Agency() domain.AgencyNumber
	Deposit(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
	Withdraw(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
	Transfer(ctx context.Context, source, destination usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
}
