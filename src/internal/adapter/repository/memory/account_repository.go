package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

// AccountRepository keeps opened accounts in insertion order.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("create account: %w", domain.ErrInvalidIdentifierFormat)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Equal(account) {
			return nil, fmt.Errorf("account %s/%s already exists", account.Agency(), account.Number())
		}
	}

	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *AccountRepository) Get(_ context.Context, number domain.AccountNumber, agency domain.AgencyNumber) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Number().Equal(number) && account.Agency().Equal(agency) {
			return account, nil
		}
	}

	return nil, fmt.Errorf("account %s/%s: %w", agency, number, domain.ErrNotFound)
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
