package domain

import "time"

type TransactionFilter func(Transaction) bool

func OfKind(kind TransactionKind) TransactionFilter {
	return func(tx Transaction) bool {
		return tx.Kind() == kind
	}
}

func OnDay(day time.Time) TransactionFilter {
	return func(tx Transaction) bool {
		return sameDay(day, tx.CreatedAt())
	}
}

func (f TransactionFilter) And(other TransactionFilter) TransactionFilter {
	return func(tx Transaction) bool {
		return f(tx) && other(tx)
	}
}
