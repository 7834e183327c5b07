package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/lib/pq"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, record domain.AuditRecord) error {
	const query = `
INSERT INTO transaction_audit (
	id,
	transaction_id,
	transaction_type,
	amount,
	account_number,
	agency_number,
	client_name,
	destination_account_number,
	destination_agency_number,
	started_at,
	finished_at,
	duration_ms,
	success,
	error_message
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var transactionID sql.NullString
	if record.TransactionID != nil {
		transactionID = sql.NullString{String: record.TransactionID.String(), Valid: true}
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID.String(),
		transactionID,
		string(record.Type),
		record.Value.StringFixed(2),
		record.AccountNumber,
		record.AgencyNumber,
		nullString(record.ClientName),
		nullString(record.DestinationAccountNumber),
		nullString(record.DestinationAgencyNumber),
		record.StartedAt,
		record.FinishedAt,
		record.DurationMs,
		record.Success,
		nullString(record.Error),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("audit record %s already stored: %w", record.ID, err)
		}
		return fmt.Errorf("create audit record: %w", err)
	}

	return nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
