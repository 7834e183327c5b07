package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type WithdrawalReset string

const (
	WithdrawalResetLifetime WithdrawalReset = "lifetime"
	WithdrawalResetDaily    WithdrawalReset = "daily"
)

func ParseWithdrawalReset(raw string) (WithdrawalReset, error) {
	switch WithdrawalReset(strings.ToLower(strings.TrimSpace(raw))) {
	case WithdrawalResetLifetime:
		return WithdrawalResetLifetime, nil
	case WithdrawalResetDaily:
		return WithdrawalResetDaily, nil
	default:
		return "", fmt.Errorf("withdrawal reset must be %q or %q, got %q", WithdrawalResetLifetime, WithdrawalResetDaily, raw)
	}
}

// LedgerPolicy holds the limits an account kind enforces. The checking account
// of the branch is the default policy.
type LedgerPolicy struct {
	Kind                  string
	WithdrawalLimit       decimal.Decimal
	MaxWithdrawals        int
	WithdrawalReset       WithdrawalReset
	DailyTransactionLimit int
}

func DefaultLedgerPolicy() LedgerPolicy {
	return LedgerPolicy{
		Kind:                  "checking",
		WithdrawalLimit:       decimal.NewFromInt(500),
		MaxWithdrawals:        3,
		WithdrawalReset:       WithdrawalResetLifetime,
		DailyTransactionLimit: 10,
	}
}

func (p LedgerPolicy) Validate() error {
	var errs []string

	if p.WithdrawalLimit.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "withdrawal limit must be greater than zero")
	}
	if p.MaxWithdrawals <= 0 {
		errs = append(errs, "max withdrawals must be greater than zero")
	}
	if p.WithdrawalReset != WithdrawalResetLifetime && p.WithdrawalReset != WithdrawalResetDaily {
		errs = append(errs, "withdrawal reset must be lifetime or daily")
	}
	if p.DailyTransactionLimit <= 0 {
		errs = append(errs, "daily transaction limit must be greater than zero")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid ledger policy: %s", strings.Join(errs, "; "))
	}
	return nil
}
