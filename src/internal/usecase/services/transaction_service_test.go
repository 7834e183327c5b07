package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestTransactionServiceDepositParsesRequest(t *testing.T) {
	svc := services.NewTransactionService(ledgerStub{
		depositFn: func(_ context.Context, ref usecase.AccountRef, value decimal.Decimal) (usecase.Receipt, error) {
			if ref.String() != "0001/00000042" {
				t.Fatalf("expected default agency and padded number, got %s", ref)
			}
			if !value.Equal(decimal.RequireFromString("10.5")) {
				t.Fatalf("expected 10.5, got %s", value)
			}
			return usecase.Receipt{}, domain.ErrDailyTransactionLimitExceeded
		},
	})

	resp, err := svc.Deposit(context.Background(), models.DepositRequest{AccountNumber: "42", Amount: "10.50"})
	if !errors.Is(err, domain.ErrDailyTransactionLimitExceeded) {
		t.Fatalf("expected ErrDailyTransactionLimitExceeded, got %v", err)
	}
	if resp.Message != "deposit rejected" || len(resp.Errors) != 1 || resp.Errors[0] != domain.ErrDailyTransactionLimitExceeded.Error() {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTransactionServiceHidesUnexpectedErrors(t *testing.T) {
	svc := services.NewTransactionService(ledgerStub{
		withdrawFn: func(context.Context, usecase.AccountRef, decimal.Decimal) (usecase.Receipt, error) {
			return usecase.Receipt{}, errors.New("disk on fire")
		},
	})

	resp, err := svc.Withdraw(context.Background(), models.WithdrawRequest{AccountNumber: "1", Amount: "5"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Unable to process withdrawal right now" {
		t.Fatalf("expected generic error message, got %+v", resp)
	}
}

func TestTransactionServiceTransferEndToEnd(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	bank, err := usecase.NewBank(memory.NewClientRepository(), memory.NewAccountRepository(),
		usecase.WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}

	for _, req := range []models.RegisterClientRequest{
		validRegisterRequest(),
		{Name: "Bruno", CPF: "111.444.777-35", DateOfBirth: "01/02/1985", Address: models.AddressModel{Street: "Rua B", City: "Natal", State: "RN"}},
	} {
		if _, err := services.NewClientService(bank).RegisterClient(ctx, req); err != nil {
			t.Fatalf("register %s: %v", req.Name, err)
		}
	}

	accounts := services.NewAccountService(bank)
	for _, cpf := range []string{"529.982.247-25", "111.444.777-35"} {
		if _, err := accounts.CreateAccount(ctx, models.CreateAccountRequest{CPF: cpf}); err != nil {
			t.Fatalf("create account for %s: %v", cpf, err)
		}
	}

	svc := services.NewTransactionService(bank)
	if _, err := svc.Deposit(ctx, models.DepositRequest{AccountNumber: "1", Amount: "150.00"}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	resp, err := svc.Transfer(ctx, models.TransferRequest{
		SourceAccountNumber:      "00000001",
		DestinationAccountNumber: "2",
		Amount:                   "100",
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if resp.Data.Balance != "50.00" || resp.Data.DestinationAccountNumber != "00000002" {
		t.Fatalf("unexpected transfer response %+v", resp.Data)
	}
	if resp.Data.Description != "You transferred R$ 100.00 to Bruno (CPF: 111.444.777-35 / Account: 00000002 / Agency: 0001)" {
		t.Fatalf("unexpected description %q", resp.Data.Description)
	}

	statement, err := accounts.GetStatement(ctx, "2", "")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if statement.Data.Balance != "100.00" || len(statement.Data.Lines) != 1 {
		t.Fatalf("unexpected destination statement %+v", statement.Data)
	}

	received, err := accounts.ListTransactions(ctx, "2", "0001", "transfer")
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(*received.Data) != 1 || (*received.Data)[0].Description != "You received R$ 100.00 from Ana Souza (CPF: 529.982.247-25 / Account: 00000001 / Agency: 0001)" {
		t.Fatalf("unexpected received transactions %+v", received.Data)
	}

	if _, err := accounts.ListTransactions(ctx, "2", "0001", "loan"); err == nil {
		t.Fatalf("expected unknown transaction type to fail")
	}

	signIn, err := accounts.SignIn(ctx, models.SignInRequest{CPF: "52998224725", AccountNumber: "1", Pin: "1234"})
	if err != nil || !signIn.Data.PinVerified {
		t.Fatalf("expected pin sign in to succeed, got %+v %v", signIn, err)
	}
	if _, err := accounts.SignIn(ctx, models.SignInRequest{CPF: "52998224725", AccountNumber: "1", Pin: "9999"}); !errors.Is(err, domain.ErrInvalidPin) {
		t.Fatalf("expected ErrInvalidPin, got %v", err)
	}
}
