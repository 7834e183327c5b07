package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const statementTimeLayout = "02/01/2006 at 15:04:05"

type StatementLine struct {
	TransactionID uuid.UUID
	Kind          TransactionKind
	Description   string
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	PerformedAt   time.Time
}

func (l StatementLine) String() string {
	return fmt.Sprintf("%s => balance after operation %s - performed on %s",
		l.Description, FormatMoney(l.Balance), l.PerformedAt.Format(statementTimeLayout))
}

// Statement is the replay of an account history from a zero balance.
type Statement struct {
	AccountNumber AccountNumber
	AgencyNumber  AgencyNumber
	Lines         []StatementLine
	Balance       decimal.Decimal
}

func (s Statement) String() string {
	var b strings.Builder
	b.WriteString("Bank statement:\n\n")
	if len(s.Lines) == 0 {
		b.WriteString("-- no transactions --")
		return b.String()
	}

	for _, line := range s.Lines {
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	return b.String()
}
