package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), newClock())

	for _, raw := range []string{"0", "-5"} {
		if _, err := account.Deposit(money(t, raw)); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("deposit %s: expected ErrInvalidAmount, got %v", raw, err)
		}
	}
	if !account.Balance().IsZero() || len(account.Transactions()) != 0 {
		t.Fatalf("expected rejected deposits to leave the account untouched")
	}
}

func TestSubCentAmountsAreRejected(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	destination := openAccount(t, newClient(t, "Bruno", brunoCPF), 2, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, account, "1000.00")

	if _, err := account.Deposit(money(t, "0.001")); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("deposit 0.001: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := account.Withdraw(money(t, "500.004")); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("withdraw 500.004: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := account.Transfer(money(t, "10.005"), destination); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("transfer 10.005: expected ErrInvalidAmount, got %v", err)
	}

	if !account.Balance().Equal(money(t, "1000.00")) || !destination.Balance().IsZero() {
		t.Fatalf("expected balances 1000.00/0.00, got %s/%s", account.Balance(), destination.Balance())
	}
	if len(account.Transactions()) != 1 || account.TotalWithdrawals() != 0 {
		t.Fatalf("expected only the initial deposit in history, got %d transactions", len(account.Transactions()))
	}

	if _, err := account.Deposit(money(t, "10.500")); err != nil {
		t.Fatalf("expected 10.500 to be accepted as 10.50, got %v", err)
	}
}

func TestWithdrawLimitIsInclusive(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), newClock())
	mustDeposit(t, account, "1000.00")

	if _, err := account.Withdraw(money(t, "500.00")); err != nil {
		t.Fatalf("expected withdrawal of 500.00 to succeed, got %v", err)
	}
	if _, err := account.Withdraw(money(t, "500.01")); !errors.Is(err, domain.ErrWithdrawalLimitExceeded) {
		t.Fatalf("expected ErrWithdrawalLimitExceeded, got %v", err)
	}
	if !account.Balance().Equal(money(t, "500.00")) {
		t.Fatalf("expected balance 500.00, got %s", account.Balance())
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), newClock())
	mustDeposit(t, account, "40.00")

	if _, err := account.Withdraw(money(t, "40.01")); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if account.TotalWithdrawals() != 0 {
		t.Fatalf("expected failed withdrawal not to count, got %d", account.TotalWithdrawals())
	}
}

func TestFourthWithdrawalInLifetimeFails(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, account, "1000.00")

	for i := 0; i < 3; i++ {
		if _, err := account.Withdraw(money(t, "100.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
		clock.advance(24 * time.Hour)
	}

	if _, err := account.Withdraw(money(t, "10.00")); !errors.Is(err, domain.ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded, got %v", err)
	}
	if !account.Balance().Equal(money(t, "700.00")) {
		t.Fatalf("expected balance 700.00, got %s", account.Balance())
	}
	if account.TotalWithdrawals() != 3 {
		t.Fatalf("expected 3 withdrawals, got %d", account.TotalWithdrawals())
	}
}

func TestFourthWithdrawalFailsEvenWhenBalanceIsShort(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, account, "30.00")

	for i := 0; i < 3; i++ {
		if _, err := account.Withdraw(money(t, "10.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}

	_, err := account.Withdraw(money(t, "10.00"))
	if !errors.Is(err, domain.ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded with zero balance, got %v", err)
	}
	if errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected the count limit to win over insufficient funds, got %v", err)
	}
	if !account.Balance().IsZero() {
		t.Fatalf("expected balance 0.00, got %s", account.Balance())
	}
}

func TestDailyWithdrawalResetPolicy(t *testing.T) {
	clock := newClock()
	policy := domain.DefaultLedgerPolicy()
	policy.WithdrawalReset = domain.WithdrawalResetDaily
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, policy, clock)
	mustDeposit(t, account, "1000.00")

	for i := 0; i < 3; i++ {
		if _, err := account.Withdraw(money(t, "50.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if _, err := account.Withdraw(money(t, "50.00")); !errors.Is(err, domain.ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded on the same day, got %v", err)
	}

	clock.advance(24 * time.Hour)
	if _, err := account.Withdraw(money(t, "50.00")); err != nil {
		t.Fatalf("expected withdrawal on the next day to succeed, got %v", err)
	}
}

func TestTransferMovesFundsAndDescribesBothSides(t *testing.T) {
	clock := newClock()
	source := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	destination := openAccount(t, newClient(t, "Bruno", brunoCPF), 2, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, source, "150.00")

	tx, err := source.Transfer(money(t, "100.00"), destination)
	if err != nil {
		t.Fatalf("expected transfer to succeed, got %v", err)
	}

	if !source.Balance().Equal(money(t, "50.00")) {
		t.Fatalf("expected source balance 50.00, got %s", source.Balance())
	}
	if !destination.Balance().Equal(money(t, "100.00")) {
		t.Fatalf("expected destination balance 100.00, got %s", destination.Balance())
	}
	if tx.Status() != domain.TransactionStatusSucceeded || tx.Counterparty() != destination {
		t.Fatalf("unexpected transfer state: status %s counterparty %v", tx.Status(), tx.Counterparty())
	}

	sent := tx.Describe(source)
	if sent != "You transferred R$ 100.00 to Bruno (CPF: 111.444.777-35 / Account: 00000002 / Agency: 0001)" {
		t.Fatalf("unexpected source description %q", sent)
	}
	received := tx.Describe(destination)
	if received != "You received R$ 100.00 from Ana (CPF: 529.982.247-25 / Account: 00000001 / Agency: 0001)" {
		t.Fatalf("unexpected destination description %q", received)
	}

	history := destination.Transactions()
	if len(history) != 1 || history[0].ID() != tx.ID() {
		t.Fatalf("expected the transfer in the destination history, got %v", history)
	}
}

func TestTransferToSameAccountFails(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), newClock())
	mustDeposit(t, account, "80.00")

	for _, raw := range []string{"10.00", "0", "1000.00"} {
		if _, err := account.Transfer(money(t, raw), account); !errors.Is(err, domain.ErrSameAccountTransfer) {
			t.Fatalf("transfer %s: expected ErrSameAccountTransfer, got %v", raw, err)
		}
	}
	if !account.Balance().Equal(money(t, "80.00")) || len(account.Transactions()) != 1 {
		t.Fatalf("expected account untouched after same-account transfers")
	}
}

func TestTransferRejectsInsufficientFundsWithoutMutation(t *testing.T) {
	clock := newClock()
	source := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	destination := openAccount(t, newClient(t, "Bruno", brunoCPF), 2, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, source, "20.00")

	if _, err := source.Transfer(money(t, "20.01"), destination); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !destination.Balance().IsZero() || len(destination.Transactions()) != 0 {
		t.Fatalf("expected destination untouched")
	}
}

func TestDailyTransactionCap(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)

	for i := 0; i < 10; i++ {
		mustDeposit(t, account, "1.00")
		clock.advance(time.Minute)
	}

	if _, err := account.Deposit(money(t, "1.00")); !errors.Is(err, domain.ErrDailyTransactionLimitExceeded) {
		t.Fatalf("expected ErrDailyTransactionLimitExceeded, got %v", err)
	}
	if account.DailyTransactionCount(clock.Now()) != 10 {
		t.Fatalf("expected 10 transactions today, got %d", account.DailyTransactionCount(clock.Now()))
	}

	clock.advance(24 * time.Hour)
	if _, err := account.Deposit(money(t, "1.00")); err != nil {
		t.Fatalf("expected deposit on the next day to succeed, got %v", err)
	}
	if !account.Balance().Equal(money(t, "11.00")) {
		t.Fatalf("expected balance 11.00, got %s", account.Balance())
	}
}

func TestReceivedTransfersCountTowardDailyCap(t *testing.T) {
	clock := newClock()
	policy := domain.DefaultLedgerPolicy()
	policy.DailyTransactionLimit = 3
	source := openAccount(t, newClient(t, "Ana", anaCPF), 1, policy, clock)
	destination := openAccount(t, newClient(t, "Bruno", brunoCPF), 2, policy, clock)

	clock.advance(-24 * time.Hour)
	mustDeposit(t, source, "100.00")
	clock.advance(24 * time.Hour)

	for i := 0; i < 3; i++ {
		if _, err := source.Transfer(money(t, "10.00"), destination); err != nil {
			t.Fatalf("transfer %d: %v", i+1, err)
		}
	}

	if _, err := destination.Deposit(money(t, "1.00")); !errors.Is(err, domain.ErrDailyTransactionLimitExceeded) {
		t.Fatalf("expected received transfers to fill the cap, got %v", err)
	}
}

func TestStatementReplayMatchesBalance(t *testing.T) {
	clock := newClock()
	source := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	destination := openAccount(t, newClient(t, "Bruno", brunoCPF), 2, domain.DefaultLedgerPolicy(), clock)

	mustDeposit(t, source, "150.00")
	clock.advance(time.Minute)
	if _, err := source.Withdraw(money(t, "20.50")); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	clock.advance(time.Minute)
	if _, err := source.Transfer(money(t, "100.00"), destination); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	_, _ = source.Withdraw(money(t, "900.00"))

	for _, account := range []*domain.Account{source, destination} {
		statement := account.Statement()
		if !statement.Balance.Equal(account.Balance()) {
			t.Fatalf("account %s: replay %s != balance %s", account.Number(), statement.Balance, account.Balance())
		}
	}

	lines := source.Statement().Lines
	if len(lines) != 3 {
		t.Fatalf("expected 3 statement lines, got %d", len(lines))
	}
	wantBalances := []decimal.Decimal{money(t, "150.00"), money(t, "129.50"), money(t, "29.50")}
	for i, line := range lines {
		if !line.Balance.Equal(wantBalances[i]) {
			t.Fatalf("line %d: expected running balance %s, got %s", i, wantBalances[i], line.Balance)
		}
	}

	text := source.GenerateStatement()
	if !strings.HasPrefix(text, "Bank statement:\n\n") {
		t.Fatalf("unexpected statement header: %q", text)
	}
	first := "You deposited R$ 150.00 => balance after operation R$ 150.00 - performed on 01/03/2026 at 10:00:00"
	if !strings.Contains(text, first) {
		t.Fatalf("expected statement to contain %q, got:\n%s", first, text)
	}
	if !strings.Contains(text, "You withdrew R$ 20.50 => balance after operation R$ 129.50") {
		t.Fatalf("expected withdrawal line, got:\n%s", text)
	}
}

func TestEmptyStatement(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), newClock())

	if got := account.GenerateStatement(); got != "Bank statement:\n\n-- no transactions --" {
		t.Fatalf("unexpected empty statement %q", got)
	}
}

func TestTransactionsWhereFiltersAndRestarts(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)
	mustDeposit(t, account, "300.00")
	if _, err := account.Withdraw(money(t, "100.00")); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	mustDeposit(t, account, "5.00")

	deposits := account.TransactionsWhere(domain.OfKind(domain.TransactionDeposit))
	for pass := 0; pass < 2; pass++ {
		count := 0
		for tx := range deposits {
			if tx.Kind() != domain.TransactionDeposit {
				t.Fatalf("expected only deposits, got %s", tx.Kind())
			}
			count++
		}
		if count != 2 {
			t.Fatalf("pass %d: expected 2 deposits, got %d", pass, count)
		}
	}

	all := 0
	for range account.TransactionsWhere(nil) {
		all++
	}
	if all != 3 {
		t.Fatalf("expected 3 transactions, got %d", all)
	}

	tomorrow := domain.OnDay(clock.Now().Add(24 * time.Hour))
	for range account.TransactionsWhere(domain.OfKind(domain.TransactionWithdraw).And(tomorrow)) {
		t.Fatalf("expected no withdrawals tomorrow")
	}
}

func TestTransactionExecutesOnce(t *testing.T) {
	clock := newClock()
	account := openAccount(t, newClient(t, "Ana", anaCPF), 1, domain.DefaultLedgerPolicy(), clock)

	deposit := domain.NewDeposit(account, money(t, "10.00"), clock.Now())
	if err := deposit.Execute(); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	if err := deposit.Execute(); !errors.Is(err, domain.ErrTransactionAlreadyExecuted) {
		t.Fatalf("expected ErrTransactionAlreadyExecuted, got %v", err)
	}
	if !account.Balance().Equal(money(t, "10.00")) {
		t.Fatalf("expected a single credit, got %s", account.Balance())
	}
}

func TestAccountSummary(t *testing.T) {
	account := openAccount(t, newClient(t, "Ana", anaCPF), 7, domain.DefaultLedgerPolicy(), newClock())
	mustDeposit(t, account, "12.30")

	summary := account.Summary()
	if summary.AccountNumber != "00000007" || summary.AgencyNumber != "0001" || summary.TotalTransactions != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	want := "Account: 00000007 | Agency: 0001 | Client: Ana | CPF: 529.982.247-25 | Balance: R$ 12.30 | Transactions: 1"
	if summary.String() != want {
		t.Fatalf("expected %q, got %q", want, summary.String())
	}
}

func TestLedgerPolicyValidate(t *testing.T) {
	if err := domain.DefaultLedgerPolicy().Validate(); err != nil {
		t.Fatalf("expected default policy to be valid, got %v", err)
	}

	policy := domain.DefaultLedgerPolicy()
	policy.MaxWithdrawals = 0
	policy.WithdrawalReset = "weekly"
	if err := policy.Validate(); err == nil {
		t.Fatalf("expected invalid policy error")
	}
}
