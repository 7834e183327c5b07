package domain

import "errors"

var (
	ErrInvalidAmount                 = errors.New("amount must be greater than zero")
	ErrInsufficientFunds             = errors.New("insufficient funds")
	ErrWithdrawalLimitExceeded       = errors.New("withdrawal exceeds the per-withdrawal limit")
	ErrWithdrawalCountExceeded       = errors.New("maximum number of withdrawals reached")
	ErrDailyTransactionLimitExceeded = errors.New("daily transaction limit reached")
	ErrSameAccountTransfer           = errors.New("cannot transfer to the same account")
	ErrInvalidIdentifierFormat       = errors.New("invalid identifier format")
	ErrDuplicateClient               = errors.New("client already registered")
	ErrNotFound                      = errors.New("record not found")
	ErrInvalidClient                 = errors.New("invalid client")
	ErrInvalidPin                    = errors.New("invalid pin")
	ErrTransactionAlreadyExecuted    = errors.New("transaction already executed")
)
