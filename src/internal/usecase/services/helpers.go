package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var businessErrors = []error{
	domain.ErrInvalidAmount,
	domain.ErrInsufficientFunds,
	domain.ErrWithdrawalLimitExceeded,
	domain.ErrWithdrawalCountExceeded,
	domain.ErrDailyTransactionLimitExceeded,
	domain.ErrSameAccountTransfer,
	domain.ErrInvalidIdentifierFormat,
	domain.ErrDuplicateClient,
	domain.ErrNotFound,
	domain.ErrInvalidClient,
	domain.ErrInvalidPin,
	commons.ErrValidation,
}

// isBusinessError reports whether err is safe to echo back to the caller.
func isBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func validationError(err error) error {
	return fmt.Errorf("%w: %s", commons.ErrValidation, err.Error())
}

func failure[T any](message string, fallback string, err error) commons.Response[T] {
	switch {
	case errors.Is(err, commons.ErrValidation), errors.Is(err, domain.ErrInvalidIdentifierFormat):
		return commons.ErrorResponse[T]("validation failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return commons.ErrorResponse[T]("record not found", err.Error())
	case isBusinessError(err):
		return commons.ErrorResponse[T](message, err.Error())
	default:
		return commons.ErrorResponse[T](message, fallback)
	}
}

func parseCPF(raw string) (domain.CPF, error) {
	return domain.NewCPF(strings.TrimSpace(raw))
}

// parseAccountRef falls back to the bank agency when agencyNumber is blank.
func parseAccountRef(accountNumber, agencyNumber string, fallback domain.AgencyNumber) (usecase.AccountRef, error) {
	number, err := domain.ParseAccountNumber(accountNumber)
	if err != nil {
		return usecase.AccountRef{}, err
	}

	agency := fallback
	if strings.TrimSpace(agencyNumber) != "" {
		agency, err = domain.ParseAgencyNumber(agencyNumber)
		if err != nil {
			return usecase.AccountRef{}, err
		}
	}

	return usecase.AccountRef{Number: number, Agency: agency}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, validationError(errors.New("amount must be numeric"))
	}
	return amount, nil
}

func toAccountResponse(summary domain.AccountSummary) models.AccountResponse {
	return models.AccountResponse{
		AccountNumber:     summary.AccountNumber,
		AgencyNumber:      summary.AgencyNumber,
		Balance:           summary.Balance.StringFixed(moneyPlaces),
		ClientName:        summary.ClientName,
		ClientCPF:         summary.ClientCPF,
		TotalTransactions: summary.TotalTransactions,
		TotalWithdrawals:  summary.TotalWithdrawals,
	}
}

func toAccountResponses(summaries []domain.AccountSummary) []models.AccountResponse {
	out := make([]models.AccountResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, toAccountResponse(summary))
	}
	return out
}

// toTransactionResponse renders tx from the point of view of perspective.
func toTransactionResponse(tx domain.Transaction, perspective *domain.Account) models.TransactionResponse {
	response := models.TransactionResponse{
		ID:            tx.ID().String(),
		Type:          string(tx.Kind()),
		Amount:        tx.Value().StringFixed(moneyPlaces),
		AccountNumber: tx.Account().Number().String(),
		AgencyNumber:  tx.Account().Agency().String(),
		Description:   tx.Describe(perspective),
		Status:        string(tx.Status()),
		CreatedAt:     tx.CreatedAt().Format(time.RFC3339),
	}
	if counterparty := tx.Counterparty(); counterparty != nil {
		response.DestinationAccountNumber = counterparty.Number().String()
		response.DestinationAgencyNumber = counterparty.Agency().String()
	}
	return response
}

func toReceiptResponse(receipt usecase.Receipt) models.TransactionResponse {
	response := toTransactionResponse(receipt.Transaction, receipt.Transaction.Account())
	response.Balance = receipt.Account.Balance.StringFixed(moneyPlaces)
	return response
}

func toStatementResponse(statement domain.Statement) models.StatementResponse {
	lines := make([]models.StatementLineResponse, 0, len(statement.Lines))
	for _, line := range statement.Lines {
		lines = append(lines, models.StatementLineResponse{
			TransactionID: line.TransactionID.String(),
			Type:          string(line.Kind),
			Description:   line.Description,
			Amount:        line.Amount.StringFixed(moneyPlaces),
			Balance:       line.Balance.StringFixed(moneyPlaces),
			PerformedAt:   line.PerformedAt.Format(time.RFC3339),
		})
	}

	return models.StatementResponse{
		AccountNumber: statement.AccountNumber.String(),
		AgencyNumber:  statement.AgencyNumber.String(),
		Balance:       statement.Balance.StringFixed(moneyPlaces),
		Lines:         lines,
		Text:          statement.String(),
	}
}
