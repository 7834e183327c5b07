package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/domain"
)

func newClient(t *testing.T, name, cpf string) *domain.Client {
	t.Helper()

	dob, err := domain.ParseDateOfBirth("15/08/1990")
	if err != nil {
		t.Fatalf("parse dob: %v", err)
	}
	client, err := domain.NewClient(name, domain.MustCPF(cpf), dob, domain.NewAddress("Rua A", "1", "Centro", "Recife", "PE"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClientRepositoryRejectsDuplicateCPF(t *testing.T) {
	repo := memory.NewClientRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newClient(t, "Ana", "529.982.247-25")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, newClient(t, "Ana Clone", "52998224725"))
	if !errors.Is(err, domain.ErrDuplicateClient) {
		t.Fatalf("expected ErrDuplicateClient, got %v", err)
	}

	found, err := repo.GetByCPF(ctx, domain.MustCPF("529.982.247-25"))
	if err != nil || found.Name() != "Ana" {
		t.Fatalf("expected original client, got %v %v", found, err)
	}

	if _, err := repo.GetByCPF(ctx, domain.MustCPF("111.444.777-35")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	clients, _ := repo.List(ctx)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
}

func TestAccountRepositoryLookupByNumberAndAgency(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()
	client := newClient(t, "Ana", "529.982.247-25")
	clock := func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	number, _ := domain.NewAccountNumber(1)
	agency, _ := domain.NewAgencyNumber(1)
	otherAgency, _ := domain.NewAgencyNumber(2)

	account, err := domain.OpenAccount(number, agency, client, domain.DefaultLedgerPolicy(), clock)
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	if _, err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, account); err == nil {
		t.Fatalf("expected second insert of the same account to fail")
	}

	got, err := repo.Get(ctx, number, agency)
	if err != nil || !got.Equal(account) {
		t.Fatalf("expected stored account, got %v %v", got, err)
	}
	if _, err := repo.Get(ctx, number, otherAgency); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another agency, got %v", err)
	}

	listed, _ := repo.List(ctx)
	listed[0] = nil
	again, _ := repo.List(ctx)
	if again[0] == nil {
		t.Fatalf("expected List to return a copy")
	}
}
