package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit  TransactionKind = "deposit"
	TransactionWithdraw TransactionKind = "withdraw"
	TransactionTransfer TransactionKind = "transfer"
)

func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(raw))) {
	case TransactionDeposit:
		return TransactionDeposit, nil
	case TransactionWithdraw:
		return TransactionWithdraw, nil
	case TransactionTransfer:
		return TransactionTransfer, nil
	default:
		return "", fmt.Errorf("transaction type must be deposit, withdraw or transfer, got %q", raw)
	}
}

type TransactionStatus string

const (
	TransactionStatusCreated   TransactionStatus = "CREATED"
	TransactionStatusSucceeded TransactionStatus = "SUCCEEDED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is one ledger operation. Execute validates before it mutates any
// balance and may run only once.
type Transaction interface {
	ID() uuid.UUID
	Kind() TransactionKind
	Account() *Account
	Counterparty() *Account
	Value() decimal.Decimal
	CreatedAt() time.Time
	Status() TransactionStatus
	Execute() error
	Effect(account *Account) decimal.Decimal
	Describe(account *Account) string
}

type transaction struct {
	id        uuid.UUID
	account   *Account
	value     decimal.Decimal
	createdAt time.Time
	status    TransactionStatus
}

func newTransaction(account *Account, value decimal.Decimal, createdAt time.Time) transaction {
	return transaction{
		id:        uuid.New(),
		account:   account,
		value:     value,
		createdAt: createdAt,
		status:    TransactionStatusCreated,
	}
}

func (t *transaction) ID() uuid.UUID             { return t.id }
func (t *transaction) Account() *Account         { return t.account }
func (t *transaction) Counterparty() *Account    { return nil }
func (t *transaction) Value() decimal.Decimal    { return t.value }
func (t *transaction) CreatedAt() time.Time      { return t.createdAt }
func (t *transaction) Status() TransactionStatus { return t.status }

func (t *transaction) begin() error {
	if t.status != TransactionStatusCreated {
		return ErrTransactionAlreadyExecuted
	}
	return nil
}

func (t *transaction) finish(err error) error {
	if err != nil {
		t.status = TransactionStatusFailed
		return err
	}
	t.status = TransactionStatusSucceeded
	return nil
}

func (t *transaction) isSubject(account *Account) bool {
	return t.account != nil && t.account.Equal(account)
}

type Deposit struct {
	transaction
}

func NewDeposit(account *Account, value decimal.Decimal, createdAt time.Time) *Deposit {
	return &Deposit{transaction: newTransaction(account, value, createdAt)}
}

func (d *Deposit) Kind() TransactionKind { return TransactionDeposit }

func (d *Deposit) Execute() error {
	if err := d.begin(); err != nil {
		return err
	}
	if !isMoneyAmount(d.value) {
		return d.finish(fmt.Errorf("deposit of %s: %w", d.value, ErrInvalidAmount))
	}

	d.account.credit(d.value)
	return d.finish(nil)
}

func (d *Deposit) Effect(account *Account) decimal.Decimal {
	if !d.isSubject(account) {
		return decimal.Zero
	}
	return d.value
}

func (d *Deposit) Describe(account *Account) string {
	if d.isSubject(account) {
		return "You deposited " + FormatMoney(d.value)
	}
	return d.String()
}

func (d *Deposit) String() string {
	return fmt.Sprintf("Deposit of %s into account %s", FormatMoney(d.value), d.account.Number())
}

type Withdraw struct {
	transaction
}

func NewWithdraw(account *Account, value decimal.Decimal, createdAt time.Time) *Withdraw {
	return &Withdraw{transaction: newTransaction(account, value, createdAt)}
}

func (w *Withdraw) Kind() TransactionKind { return TransactionWithdraw }

func (w *Withdraw) Execute() error {
	if err := w.begin(); err != nil {
		return err
	}

	policy := w.account.policy
	switch {
	case !isMoneyAmount(w.value):
		return w.finish(fmt.Errorf("withdrawal of %s: %w", w.value, ErrInvalidAmount))
	case w.account.withdrawalCount(w.createdAt) >= policy.MaxWithdrawals:
		return w.finish(fmt.Errorf("limit of %d withdrawals: %w", policy.MaxWithdrawals, ErrWithdrawalCountExceeded))
	case w.value.GreaterThan(w.account.balance):
		return w.finish(fmt.Errorf("withdrawal of %s with balance %s: %w", FormatMoney(w.value), FormatMoney(w.account.balance), ErrInsufficientFunds))
	case w.value.GreaterThan(policy.WithdrawalLimit):
		return w.finish(fmt.Errorf("withdrawal of %s above %s: %w", FormatMoney(w.value), FormatMoney(policy.WithdrawalLimit), ErrWithdrawalLimitExceeded))
	}

	w.account.debit(w.value)
	w.account.withdrawals++
	return w.finish(nil)
}

func (w *Withdraw) Effect(account *Account) decimal.Decimal {
	if !w.isSubject(account) {
		return decimal.Zero
	}
	return w.value.Neg()
}

func (w *Withdraw) Describe(account *Account) string {
	if w.isSubject(account) {
		return "You withdrew " + FormatMoney(w.value)
	}
	return w.String()
}

func (w *Withdraw) String() string {
	return fmt.Sprintf("Withdrawal of %s from account %s", FormatMoney(w.value), w.account.Number())
}

type Transfer struct {
	transaction
	destination *Account
}

func NewTransfer(source, destination *Account, value decimal.Decimal, createdAt time.Time) *Transfer {
	return &Transfer{
		transaction: newTransaction(source, value, createdAt),
		destination: destination,
	}
}

func (t *Transfer) Kind() TransactionKind  { return TransactionTransfer }
func (t *Transfer) Counterparty() *Account { return t.destination }

func (t *Transfer) Execute() error {
	if err := t.begin(); err != nil {
		return err
	}

	switch {
	case t.destination == nil:
		return t.finish(fmt.Errorf("destination account: %w", ErrNotFound))
	case t.account.Equal(t.destination):
		return t.finish(ErrSameAccountTransfer)
	case !isMoneyAmount(t.value):
		return t.finish(fmt.Errorf("transfer of %s: %w", t.value, ErrInvalidAmount))
	case t.value.GreaterThan(t.account.balance):
		return t.finish(fmt.Errorf("transfer of %s with balance %s: %w", FormatMoney(t.value), FormatMoney(t.account.balance), ErrInsufficientFunds))
	}

	t.account.debit(t.value)
	t.destination.credit(t.value)
	return t.finish(nil)
}

func (t *Transfer) Effect(account *Account) decimal.Decimal {
	switch {
	case t.isSubject(account):
		return t.value.Neg()
	case t.destination != nil && t.destination.Equal(account):
		return t.value
	default:
		return decimal.Zero
	}
}

func (t *Transfer) Describe(account *Account) string {
	switch {
	case t.isSubject(account):
		return fmt.Sprintf("You transferred %s to %s", FormatMoney(t.value), partyLabel(t.destination))
	case t.destination != nil && t.destination.Equal(account):
		return fmt.Sprintf("You received %s from %s", FormatMoney(t.value), partyLabel(t.account))
	default:
		return t.String()
	}
}

func (t *Transfer) String() string {
	return fmt.Sprintf("Transfer of %s from account %s to %s", FormatMoney(t.value), t.account.Number(), t.destination.Number())
}

func partyLabel(account *Account) string {
	client := account.Client()
	return fmt.Sprintf("%s (CPF: %s / Account: %s / Agency: %s)", client.Name(), client.CPF(), account.Number(), account.Agency())
}
