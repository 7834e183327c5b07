package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

// ClientRepository keeps registered clients in insertion order.
type ClientRepository struct {
	mu      sync.RWMutex
	clients []*domain.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, fmt.Errorf("create client: %w", domain.ErrInvalidClient)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.clients {
		if existing.Equal(client) {
			return nil, fmt.Errorf("create client %s: %w", client.CPF(), domain.ErrDuplicateClient)
		}
	}

	r.clients = append(r.clients, client)
	return client, nil
}

func (r *ClientRepository) GetByCPF(_ context.Context, cpf domain.CPF) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.CPF().Equal(cpf) {
			return client, nil
		}
	}

	return nil, fmt.Errorf("client %s: %w", cpf, domain.ErrNotFound)
}

func (r *ClientRepository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
