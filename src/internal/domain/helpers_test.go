package domain_test

import (
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	anaCPF   = "529.982.247-25"
	brunoCPF = "111.444.777-35"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fixedClock {
	return &fixedClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func money(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(raw)
}

func newClient(t *testing.T, name, cpf string) *domain.Client {
	t.Helper()

	dob, err := domain.ParseDateOfBirth("15/08/1990")
	if err != nil {
		t.Fatalf("parse dob: %v", err)
	}
	client, err := domain.NewClient(name, domain.MustCPF(cpf), dob, domain.NewAddress("Rua das Flores", "10", "Centro", "Recife", "PE"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func openAccount(t *testing.T, client *domain.Client, number int, policy domain.LedgerPolicy, clock *fixedClock) *domain.Account {
	t.Helper()

	accountNumber, err := domain.NewAccountNumber(number)
	if err != nil {
		t.Fatalf("account number: %v", err)
	}
	agency, err := domain.NewAgencyNumber(1)
	if err != nil {
		t.Fatalf("agency number: %v", err)
	}

	account, err := domain.OpenAccount(accountNumber, agency, client, policy, clock.Now)
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	return account
}

func mustDeposit(t *testing.T, account *domain.Account, raw string) {
	t.Helper()
	if _, err := account.Deposit(money(t, raw)); err != nil {
		t.Fatalf("deposit %s: %v", raw, err)
	}
}
