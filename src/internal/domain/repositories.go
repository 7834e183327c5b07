package domain

import "context"

type ClientRepository interface {
	Create(ctx context.Context, client *Client) (*Client, error)
	GetByCPF(ctx context.Context, cpf CPF) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	Get(ctx context.Context, number AccountNumber, agency AgencyNumber) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

type AuditRepository interface {
	Create(ctx context.Context, record AuditRecord) error
}
