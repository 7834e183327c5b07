package domain

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the ledger of one client account. It is not safe for concurrent
// use; callers serialize access.
type Account struct {
	number       AccountNumber
	agency       AgencyNumber
	client       *Client
	balance      decimal.Decimal
	transactions []Transaction
	withdrawals  int
	policy       LedgerPolicy
	clock        Clock
}

// OpenAccount creates an empty account and links it to its owner.
func OpenAccount(number AccountNumber, agency AgencyNumber, client *Client, policy LedgerPolicy, clock Clock) (*Account, error) {
	if number.IsZero() || agency.IsZero() {
		return nil, fmt.Errorf("account and agency numbers are required: %w", ErrInvalidIdentifierFormat)
	}
	if client == nil {
		return nil, fmt.Errorf("account owner is required: %w", ErrInvalidClient)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock
	}

	account := &Account{
		number:  number,
		agency:  agency,
		client:  client,
		balance: decimal.Zero,
		policy:  policy,
		clock:   clock,
	}
	client.addAccount(account)

	return account, nil
}

func (a *Account) Number() AccountNumber    { return a.number }
func (a *Account) Agency() AgencyNumber     { return a.agency }
func (a *Account) Client() *Client          { return a.client }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) TotalWithdrawals() int    { return a.withdrawals }
func (a *Account) Policy() LedgerPolicy     { return a.policy }

func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.number.Equal(other.number) && a.agency.Equal(other.agency)
}

func (a *Account) Deposit(value decimal.Decimal) (Transaction, error) {
	now := a.clock()
	if err := a.checkDailyLimit(now); err != nil {
		return nil, err
	}

	deposit := NewDeposit(a, value, now)
	if err := deposit.Execute(); err != nil {
		return nil, err
	}

	a.record(deposit)
	return deposit, nil
}

func (a *Account) Withdraw(value decimal.Decimal) (Transaction, error) {
	now := a.clock()
	if err := a.checkDailyLimit(now); err != nil {
		return nil, err
	}

	withdraw := NewWithdraw(a, value, now)
	if err := withdraw.Execute(); err != nil {
		return nil, err
	}

	a.record(withdraw)
	return withdraw, nil
}

// Transfer moves value to destination and records the same transaction in both
// histories.
func (a *Account) Transfer(value decimal.Decimal, destination *Account) (Transaction, error) {
	if destination == nil {
		return nil, fmt.Errorf("destination account: %w", ErrNotFound)
	}
	if a.Equal(destination) {
		return nil, ErrSameAccountTransfer
	}

	now := a.clock()
	if err := a.checkDailyLimit(now); err != nil {
		return nil, err
	}

	transfer := NewTransfer(a, destination, value, now)
	if err := transfer.Execute(); err != nil {
		return nil, err
	}

	a.record(transfer)
	destination.record(transfer)
	return transfer, nil
}

// DailyTransactionCount counts the history entries that fall on the calendar
// day of date, received transfers included.
func (a *Account) DailyTransactionCount(date time.Time) int {
	count := 0
	for range a.TransactionsWhere(OnDay(date)) {
		count++
	}
	return count
}

func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// TransactionsWhere yields the history entries accepted by filter, oldest first.
// A nil filter yields everything. Each range over the sequence starts again
// from the oldest entry.
func (a *Account) TransactionsWhere(filter TransactionFilter) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range a.Transactions() {
			if filter != nil && !filter(tx) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

func (a *Account) Statement() Statement {
	statement := Statement{
		AccountNumber: a.number,
		AgencyNumber:  a.agency,
		Balance:       decimal.Zero,
		Lines:         make([]StatementLine, 0, len(a.transactions)),
	}

	running := decimal.Zero
	for _, tx := range a.transactions {
		effect := tx.Effect(a)
		running = running.Add(effect)
		statement.Lines = append(statement.Lines, StatementLine{
			TransactionID: tx.ID(),
			Kind:          tx.Kind(),
			Description:   tx.Describe(a),
			Amount:        effect,
			Balance:       running,
			PerformedAt:   tx.CreatedAt(),
		})
	}
	statement.Balance = running

	return statement
}

func (a *Account) GenerateStatement() string {
	return a.Statement().String()
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		AccountNumber:     a.number.String(),
		AgencyNumber:      a.agency.String(),
		Balance:           a.balance,
		ClientName:        a.client.Name(),
		ClientCPF:         a.client.CPF().String(),
		TotalTransactions: len(a.transactions),
		TotalWithdrawals:  a.withdrawals,
	}
}

func (a *Account) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account number: %s\n", a.number)
	fmt.Fprintf(&b, "Agency number: %s\n", a.agency)
	fmt.Fprintf(&b, "Balance: %s\n", FormatMoney(a.balance))
	b.WriteString(a.GenerateStatement())
	return b.String()
}

func (a *Account) credit(value decimal.Decimal) {
	a.balance = a.balance.Add(value)
}

func (a *Account) debit(value decimal.Decimal) {
	a.balance = a.balance.Sub(value)
}

func (a *Account) record(tx Transaction) {
	a.transactions = append(a.transactions, tx)
}

func (a *Account) checkDailyLimit(now time.Time) error {
	if a.DailyTransactionCount(now) >= a.policy.DailyTransactionLimit {
		return fmt.Errorf("limit of %d transactions per day: %w", a.policy.DailyTransactionLimit, ErrDailyTransactionLimitExceeded)
	}
	return nil
}

func (a *Account) withdrawalCount(at time.Time) int {
	if a.policy.WithdrawalReset != WithdrawalResetDaily {
		return a.withdrawals
	}

	count := 0
	for range a.TransactionsWhere(OfKind(TransactionWithdraw).And(OnDay(at))) {
		count++
	}
	return count
}

type AccountSummary struct {
	AccountNumber     string
	AgencyNumber      string
	Balance           decimal.Decimal
	ClientName        string
	ClientCPF         string
	TotalTransactions int
	TotalWithdrawals  int
}

func (s AccountSummary) String() string {
	return fmt.Sprintf("Account: %s | Agency: %s | Client: %s | CPF: %s | Balance: %s | Transactions: %d",
		s.AccountNumber, s.AgencyNumber, s.ClientName, s.ClientCPF, FormatMoney(s.Balance), s.TotalTransactions)
}
