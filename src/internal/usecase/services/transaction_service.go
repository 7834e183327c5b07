package services

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/logger"
)

type TransactionService struct {
	ledger Ledger
}

func NewTransactionService(ledger Ledger) *TransactionService {
	return &TransactionService{ledger: ledger}
}

func (s *TransactionService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service deposit validation failed", err, nil)
		return commons.ValidationResponse[models.TransactionResponse](err), validationError(err)
	}

	ref, err := parseAccountRef(req.AccountNumber, req.AgencyNumber, s.ledger.Agency())
	if err != nil {
		return failure[models.TransactionResponse]("deposit rejected", "Unable to process deposit right now", err), err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return failure[models.TransactionResponse]("deposit rejected", "Unable to process deposit right now", err), err
	}

	receipt, err := s.ledger.Deposit(ctx, ref, amount)
	if err != nil {
		logger.Error("transaction service deposit failed", err, logger.Fields{
			"account": ref.String(),
			"amount":  req.Amount,
		})
		return failure[models.TransactionResponse]("deposit rejected", "Unable to process deposit right now", err), err
	}

	response := toReceiptResponse(receipt)
	logger.Info("transaction service deposit success", logger.Fields{
		"transactionId": response.ID,
		"account":       ref.String(),
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("deposit completed successfully", response), nil
}

func (s *TransactionService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service withdraw validation failed", err, nil)
		return commons.ValidationResponse[models.TransactionResponse](err), validationError(err)
	}

	ref, err := parseAccountRef(req.AccountNumber, req.AgencyNumber, s.ledger.Agency())
	if err != nil {
		return failure[models.TransactionResponse]("withdrawal rejected", "Unable to process withdrawal right now", err), err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return failure[models.TransactionResponse]("withdrawal rejected", "Unable to process withdrawal right now", err), err
	}

	receipt, err := s.ledger.Withdraw(ctx, ref, amount)
	if err != nil {
		logger.Error("transaction service withdraw failed", err, logger.Fields{
			"account": ref.String(),
			"amount":  req.Amount,
		})
		return failure[models.TransactionResponse]("withdrawal rejected", "Unable to process withdrawal right now", err), err
	}

	response := toReceiptResponse(receipt)
	logger.Info("transaction service withdraw success", logger.Fields{
		"transactionId": response.ID,
		"account":       ref.String(),
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("withdrawal completed successfully", response), nil
}

func (s *TransactionService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service transfer validation failed", err, nil)
		return commons.ValidationResponse[models.TransactionResponse](err), validationError(err)
	}

	source, err := parseAccountRef(req.SourceAccountNumber, req.SourceAgencyNumber, s.ledger.Agency())
	if err != nil {
		return failure[models.TransactionResponse]("transfer rejected", "Unable to process transfer right now", err), err
	}
	destination, err := parseAccountRef(req.DestinationAccountNumber, req.DestinationAgencyNumber, s.ledger.Agency())
	if err != nil {
		return failure[models.TransactionResponse]("transfer rejected", "Unable to process transfer right now", err), err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return failure[models.TransactionResponse]("transfer rejected", "Unable to process transfer right now", err), err
	}

	receipt, err := s.ledger.Transfer(ctx, source, destination, amount)
	if err != nil {
		logger.Error("transaction service transfer failed", err, logger.Fields{
			"source":      source.String(),
			"destination": destination.String(),
			"amount":      req.Amount,
		})
		return failure[models.TransactionResponse]("transfer rejected", "Unable to process transfer right now", err), err
	}

	response := toReceiptResponse(receipt)
	logger.Info("transaction service transfer success", logger.Fields{
		"transactionId": response.ID,
		"source":        source.String(),
		"destination":   destination.String(),
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}
