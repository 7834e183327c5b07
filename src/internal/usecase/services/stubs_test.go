package services_test

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
	"github.com/shopspring/decimal"
)

type clientRegistryStub struct {
	registerClientFn func(ctx context.Context, client *domain.Client) (bool, error)
	searchClientFn   func(ctx context.Context, cpf domain.CPF) (*domain.Client, error)
	accountsOfFn     func(ctx context.Context, cpf domain.CPF) ([]domain.AccountSummary, error)
}

func (s clientRegistryStub) RegisterClient(ctx context.Context, client *domain.Client) (bool, error) {
	if s.registerClientFn != nil {
		return s.registerClientFn(ctx, client)
	}
	return true, nil
}

func (s clientRegistryStub) SearchClient(ctx context.Context, cpf domain.CPF) (*domain.Client, error) {
	if s.searchClientFn != nil {
		return s.searchClientFn(ctx, cpf)
	}
	return nil, domain.ErrNotFound
}

func (s clientRegistryStub) AccountsOf(ctx context.Context, cpf domain.CPF) ([]domain.AccountSummary, error) {
	if s.accountsOfFn != nil {
		return s.accountsOfFn(ctx, cpf)
	}
	return nil, nil
}

type ledgerStub struct {
	depositFn  func(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
	withdrawFn func(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
	transferFn func(ctx context.Context, source, destination usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error)
}

func (s ledgerStub) Agency() domain.AgencyNumber {
	agency, _ := domain.NewAgencyNumber(1)
	return agency
}

func (s ledgerStub) Deposit(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error) {
	if s.depositFn != nil {
		return s.depositFn(ctx, ref, value)
	}
	return usecase.Receipt{}, nil
}

func (s ledgerStub) Withdraw(ctx context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error) {
	if s.withdrawFn != nil {
		return s.withdrawFn(ctx, ref, value)
	}
	return usecase.Receipt{}, nil
}

func (s ledgerStub) Transfer(ctx context.Context, source, destination usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error) {
	if s.transferFn != nil {
		return s.transferFn(ctx, source, destination, value)
	}
	return usecase.Receipt{}, nil
}

type auditSinkStub struct {
	createFn func(ctx context.Context, record domain.AuditRecord) error
}

func (s auditSinkStub) Create(ctx context.Context, record domain.AuditRecord) error {
	if s.createFn != nil {
		return s.createFn(ctx, record)
	}
	return nil
}
