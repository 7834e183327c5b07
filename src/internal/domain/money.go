package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const moneyDecimalPlaces = 2

// Clock returns the current time. Accounts use it to timestamp transactions and
// to decide which calendar day the daily cap applies to.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func FormatMoney(value decimal.Decimal) string {
	return "R$ " + value.StringFixed(moneyDecimalPlaces)
}

// isMoneyAmount reports whether value is positive and carries no fraction below
// one cent.
func isMoneyAmount(value decimal.Decimal) bool {
	return value.GreaterThan(decimal.Zero) && value.Equal(value.Truncate(moneyDecimalPlaces))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
