package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

func TestNewClientRequiresNameAndCPF(t *testing.T) {
	dob, _ := domain.ParseDateOfBirth("15/08/1990")

	if _, err := domain.NewClient("  ", domain.MustCPF(anaCPF), dob, domain.Address{}); !errors.Is(err, domain.ErrInvalidClient) {
		t.Fatalf("expected ErrInvalidClient for blank name, got %v", err)
	}
	if _, err := domain.NewClient("Ana", domain.CPF{}, dob, domain.Address{}); !errors.Is(err, domain.ErrInvalidClient) {
		t.Fatalf("expected ErrInvalidClient for missing cpf, got %v", err)
	}
}

func TestClientPin(t *testing.T) {
	client := newClient(t, "Ana", anaCPF)

	if err := client.VerifyPin("1234"); !errors.Is(err, domain.ErrInvalidPin) {
		t.Fatalf("expected client without pin to fail, got %v", err)
	}

	if err := client.SetPin("1234"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if !client.HasPin() {
		t.Fatalf("expected client to have a pin")
	}
	if err := client.VerifyPin("1234"); err != nil {
		t.Fatalf("expected pin to verify, got %v", err)
	}
	if err := client.VerifyPin("4321"); !errors.Is(err, domain.ErrInvalidPin) {
		t.Fatalf("expected ErrInvalidPin, got %v", err)
	}
}

func TestClientLinksAccountsAndDescribes(t *testing.T) {
	clock := newClock()
	client := newClient(t, "Ana", anaCPF)
	first := openAccount(t, client, 1, domain.DefaultLedgerPolicy(), clock)
	second := openAccount(t, client, 2, domain.DefaultLedgerPolicy(), clock)

	accounts := client.Accounts()
	if len(accounts) != 2 || accounts[0] != first || accounts[1] != second {
		t.Fatalf("expected accounts in opening order, got %v", accounts)
	}
	if first.Client() != client {
		t.Fatalf("expected account to point back to its client")
	}

	same := newClient(t, "Ana Maria", anaCPF)
	if !client.Equal(same) {
		t.Fatalf("expected clients with the same cpf to be equal")
	}

	text := client.Describe()
	for _, want := range []string{"Client: Ana (CPF: 529.982.247-25)", "Rua das Flores, nº 10, Centro - Recife/PE", "Account number: 00000002"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected description to contain %q, got:\n%s", want, text)
		}
	}
}
