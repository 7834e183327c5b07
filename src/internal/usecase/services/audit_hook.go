package services

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
)

// NewAuditHook logs every ledger attempt and forwards it to sinks. Sink
// failures are logged and never reach the ledger caller.
func NewAuditHook(sinks ...domain.AuditRepository) usecase.AuditHook {
	return func(ctx context.Context, record domain.AuditRecord) {
		fields := logger.Fields{
			"auditId":       record.ID.String(),
			"type":          string(record.Type),
			"amount":        record.Value.StringFixed(moneyPlaces),
			"accountNumber": record.AccountNumber,
			"agencyNumber":  record.AgencyNumber,
			"durationMs":    record.DurationMs,
			"success":       record.Success,
		}
		if record.DestinationAccountNumber != "" {
			fields["destinationAccountNumber"] = record.DestinationAccountNumber
			fields["destinationAgencyNumber"] = record.DestinationAgencyNumber
		}

		if record.Success {
			logger.Info("ledger operation completed", fields)
		} else {
			fields["reason"] = record.Error
			logger.Warn("ledger operation rejected", fields)
		}

		sinkCtx := context.WithoutCancel(ctx)
		for _, sink := range sinks {
			if sink == nil {
				continue
			}
			if err := sink.Create(sinkCtx, record); err != nil {
				logger.Error("audit sink write failed", err, logger.Fields{
					"auditId": record.ID.String(),
				})
			}
		}
	}
}
