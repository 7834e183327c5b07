package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestAuditHookWritesEverySinkAndSurvivesFailures(t *testing.T) {
	var written []string
	failing := auditSinkStub{createFn: func(context.Context, domain.AuditRecord) error {
		written = append(written, "failing")
		return errors.New("sink unavailable")
	}}
	healthy := auditSinkStub{createFn: func(ctx context.Context, record domain.AuditRecord) error {
		if ctx.Err() != nil {
			t.Fatalf("expected sink context to ignore caller cancellation")
		}
		if record.Type != domain.TransactionWithdraw {
			t.Fatalf("unexpected record type %s", record.Type)
		}
		written = append(written, "healthy")
		return nil
	}}

	record := domain.NewAuditRecord(domain.TransactionWithdraw, decimal.NewFromInt(700), time.Now())
	record.Complete(nil, domain.ErrWithdrawalLimitExceeded, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	services.NewAuditHook(failing, healthy)(ctx, record)

	if len(written) != 2 || written[0] != "failing" || written[1] != "healthy" {
		t.Fatalf("expected both sinks to be called in order, got %v", written)
	}
}
