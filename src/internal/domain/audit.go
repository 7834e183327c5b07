package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditRecord describes one ledger attempt, successful or not.
type AuditRecord struct {
	ID                       uuid.UUID       `json:"id"`
	TransactionID            *uuid.UUID      `json:"transactionId,omitempty"`
	Type                     TransactionKind `json:"type"`
	Value                    decimal.Decimal `json:"value"`
	AccountNumber            string          `json:"accountNumber"`
	AgencyNumber             string          `json:"agencyNumber"`
	ClientName               string          `json:"clientName,omitempty"`
	DestinationAccountNumber string          `json:"destinationAccountNumber,omitempty"`
	DestinationAgencyNumber  string          `json:"destinationAgencyNumber,omitempty"`
	StartedAt                time.Time       `json:"startedAt"`
	FinishedAt               time.Time       `json:"finishedAt"`
	DurationMs               int64           `json:"durationMs"`
	Success                  bool            `json:"success"`
	Error                    string          `json:"error,omitempty"`
}

func NewAuditRecord(kind TransactionKind, value decimal.Decimal, startedAt time.Time) AuditRecord {
	return AuditRecord{
		ID:        uuid.New(),
		Type:      kind,
		Value:     value,
		StartedAt: startedAt,
	}
}

// Complete stamps the outcome of the attempt. tx is nil when the ledger rejected
// the operation before a transaction was recorded.
func (r *AuditRecord) Complete(tx Transaction, err error, finishedAt time.Time) {
	r.FinishedAt = finishedAt
	r.DurationMs = finishedAt.Sub(r.StartedAt).Milliseconds()
	r.Success = err == nil
	if err != nil {
		r.Error = err.Error()
	}
	if tx != nil {
		id := tx.ID()
		r.TransactionID = &id
	}
}
