package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

// AuditHook observes every ledger attempt after the bank lock is released.
type AuditHook func(ctx context.Context, record domain.AuditRecord)

// DelayStrategy runs before a ledger operation acquires the bank lock.
type DelayStrategy func(ctx context.Context) error

// AccountRef identifies an account inside the registry.
type AccountRef struct {
	Number domain.AccountNumber
	Agency domain.AgencyNumber
}

func (r AccountRef) String() string {
	return r.Agency.String() + "/" + r.Number.String()
}

// Receipt is the outcome of a successful ledger operation together with the
// acting account as it stood right after it.
type Receipt struct {
	Transaction domain.Transaction
	Account     domain.AccountSummary
}

type Option func(*Bank)

func WithClock(clock domain.Clock) Option {
	return func(b *Bank) {
		if clock != nil {
			b.clock = clock
		}
	}
}

func WithPolicy(policy domain.LedgerPolicy) Option {
	return func(b *Bank) { b.policy = policy }
}

func WithAgency(agency domain.AgencyNumber) Option {
	return func(b *Bank) {
		if !agency.IsZero() {
			b.agency = agency
		}
	}
}

func WithAuditHook(hook AuditHook) Option {
	return func(b *Bank) {
		if hook != nil {
			b.hooks = append(b.hooks, hook)
		}
	}
}

func WithDelayStrategy(delay DelayStrategy) Option {
	return func(b *Bank) { b.delay = delay }
}

// WithProcessingDelay pauses every ledger operation for d, or until ctx is done.
func WithProcessingDelay(d time.Duration) Option {
	if d <= 0 {
		return WithDelayStrategy(nil)
	}
	return WithDelayStrategy(func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}

// Bank is the registry of clients and accounts of one agency. Every registry
// and ledger operation runs under a single lock.
type Bank struct {
	mu       sync.Mutex
	clients  domain.ClientRepository
	accounts domain.AccountRepository
	agency   domain.AgencyNumber
	policy   domain.LedgerPolicy
	clock    domain.Clock
	sequence int
	hooks    []AuditHook
	delay    DelayStrategy
}

func NewBank(clients domain.ClientRepository, accounts domain.AccountRepository, opts ...Option) (*Bank, error) {
	if clients == nil || accounts == nil {
		return nil, errors.New("bank requires client and account repositories")
	}

	defaultAgency, err := domain.NewAgencyNumber(1)
	if err != nil {
		return nil, err
	}

	bank := &Bank{
		clients:  clients,
		accounts: accounts,
		agency:   defaultAgency,
		policy:   domain.DefaultLedgerPolicy(),
		clock:    domain.SystemClock,
	}
	for _, opt := range opts {
		opt(bank)
	}

	if err := bank.policy.Validate(); err != nil {
		return nil, err
	}

	return bank, nil
}

func (b *Bank) Agency() domain.AgencyNumber { return b.agency }
func (b *Bank) Policy() domain.LedgerPolicy { return b.policy }

// RegisterClient adds client to the registry. A CPF that is already registered
// yields false and ErrDuplicateClient, leaving the registry unchanged.
func (b *Bank) RegisterClient(ctx context.Context, client *domain.Client) (bool, error) {
	if client == nil {
		return false, domain.ErrInvalidClient
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.clients.GetByCPF(ctx, client.CPF()); err == nil {
		return false, fmt.Errorf("register client %s: %w", client.CPF(), domain.ErrDuplicateClient)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	if _, err := b.clients.Create(ctx, client); err != nil {
		return false, err
	}
	return true, nil
}

// CreateAccount opens the next sequential account of the agency for a
// registered client.
func (b *Bank) CreateAccount(ctx context.Context, client *domain.Client) (*domain.Account, error) {
	if client == nil {
		return nil, domain.ErrInvalidClient
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	owner, err := b.clients.GetByCPF(ctx, client.CPF())
	if err != nil {
		return nil, err
	}

	number, err := domain.NewAccountNumber(b.sequence + 1)
	if err != nil {
		return nil, fmt.Errorf("next account number: %w", err)
	}

	account, err := domain.OpenAccount(number, b.agency, owner, b.policy, b.clock)
	if err != nil {
		return nil, err
	}
	if _, err := b.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	b.sequence++
	return account, nil
}

func (b *Bank) SearchClient(ctx context.Context, cpf domain.CPF) (*domain.Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.clients.GetByCPF(ctx, cpf)
}

func (b *Bank) SearchAccount(ctx context.Context, ref AccountRef) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.accounts.Get(ctx, ref.Number, ref.Agency)
}

// SignIn returns the account only when its owner carries cpf.
func (b *Bank) SignIn(ctx context.Context, cpf domain.CPF, ref AccountRef) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.signIn(ctx, cpf, ref)
}

func (b *Bank) SignInWithPin(ctx context.Context, cpf domain.CPF, ref AccountRef, pin string) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, err := b.signIn(ctx, cpf, ref)
	if err != nil {
		return nil, err
	}
	if err := account.Client().VerifyPin(pin); err != nil {
		return nil, err
	}
	return account, nil
}

func (b *Bank) signIn(ctx context.Context, cpf domain.CPF, ref AccountRef) (*domain.Account, error) {
	account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
	if err != nil {
		return nil, err
	}
	if !account.Client().CPF().Equal(cpf) {
		return nil, fmt.Errorf("account %s for client %s: %w", ref, cpf, domain.ErrNotFound)
	}
	return account, nil
}

func (b *Bank) Deposit(ctx context.Context, ref AccountRef, value decimal.Decimal) (Receipt, error) {
	record := b.newRecord(domain.TransactionDeposit, value, ref)
	return b.runLedger(ctx, &record, func() (*domain.Account, domain.Transaction, error) {
		account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
		if err != nil {
			return nil, nil, err
		}
		record.ClientName = account.Client().Name()
		tx, err := account.Deposit(value)
		return account, tx, err
	})
}

func (b *Bank) Withdraw(ctx context.Context, ref AccountRef, value decimal.Decimal) (Receipt, error) {
	record := b.newRecord(domain.TransactionWithdraw, value, ref)
	return b.runLedger(ctx, &record, func() (*domain.Account, domain.Transaction, error) {
		account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
		if err != nil {
			return nil, nil, err
		}
		record.ClientName = account.Client().Name()
		tx, err := account.Withdraw(value)
		return account, tx, err
	})
}

func (b *Bank) Transfer(ctx context.Context, source, destination AccountRef, value decimal.Decimal) (Receipt, error) {
	record := b.newRecord(domain.TransactionTransfer, value, source)
	record.DestinationAccountNumber = destination.Number.String()
	record.DestinationAgencyNumber = destination.Agency.String()

	return b.runLedger(ctx, &record, func() (*domain.Account, domain.Transaction, error) {
		from, err := b.accounts.Get(ctx, source.Number, source.Agency)
		if err != nil {
			return nil, nil, err
		}
		record.ClientName = from.Client().Name()

		to, err := b.accounts.Get(ctx, destination.Number, destination.Agency)
		if err != nil {
			return nil, nil, err
		}
		tx, err := from.Transfer(value, to)
		return from, tx, err
	})
}

// Summary snapshots one account under the bank lock.
func (b *Bank) Summary(ctx context.Context, ref AccountRef) (domain.AccountSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
	if err != nil {
		return domain.AccountSummary{}, err
	}
	return account.Summary(), nil
}

// AccountsOf snapshots the accounts owned by the client with cpf, in opening order.
func (b *Bank) AccountsOf(ctx context.Context, cpf domain.CPF) ([]domain.AccountSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	client, err := b.clients.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	accounts := client.Accounts()
	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summary())
	}
	return summaries, nil
}

func (b *Bank) Statement(ctx context.Context, ref AccountRef) (domain.Statement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
	if err != nil {
		return domain.Statement{}, err
	}
	return account.Statement(), nil
}

// Transactions lists the history of an account accepted by filter, oldest first.
func (b *Bank) Transactions(ctx context.Context, ref AccountRef, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, err := b.accounts.Get(ctx, ref.Number, ref.Agency)
	if err != nil {
		return nil, err
	}

	var out []domain.Transaction
	for tx := range account.TransactionsWhere(filter) {
		out = append(out, tx)
	}
	return out, nil
}

func (b *Bank) Accounts(ctx context.Context) ([]domain.AccountSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	accounts, err := b.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summary())
	}
	return summaries, nil
}

func (b *Bank) newRecord(kind domain.TransactionKind, value decimal.Decimal, ref AccountRef) domain.AuditRecord {
	record := domain.NewAuditRecord(kind, value, b.clock())
	record.AccountNumber = ref.Number.String()
	record.AgencyNumber = ref.Agency.String()
	return record
}

func (b *Bank) runLedger(ctx context.Context, record *domain.AuditRecord, op func() (*domain.Account, domain.Transaction, error)) (Receipt, error) {
	var (
		receipt Receipt
		err     error
	)

	if b.delay != nil {
		err = b.delay(ctx)
	}
	if err == nil {
		b.mu.Lock()
		var account *domain.Account
		account, receipt.Transaction, err = op()
		if err == nil {
			receipt.Account = account.Summary()
		} else {
			receipt.Transaction = nil
		}
		b.mu.Unlock()
	}

	record.Complete(receipt.Transaction, err, b.clock())
	for _, hook := range b.hooks {
		hook(ctx, *record)
	}

	if err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}
