package services

import (
	"context"
	"errors"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
)

type AccountService struct {
	bank AccountRegistry
}

func NewAccountService(bank AccountRegistry) *AccountService {
	return &AccountService{bank: bank}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ValidationResponse[models.AccountResponse](err), validationError(err)
	}

	cpf, err := parseCPF(req.CPF)
	if err != nil {
		return failure[models.AccountResponse]("failed to create account", "Unable to create account right now", err), err
	}

	client, err := s.bank.SearchClient(ctx, cpf)
	if err != nil {
		logger.Error("account service create account client lookup failed", err, logger.Fields{
			"cpf": req.CPF,
		})
		return failure[models.AccountResponse]("failed to create account", "Unable to create account right now", err), err
	}

	account, err := s.bank.CreateAccount(ctx, client)
	if err != nil {
		logger.Error("account service create account failed", err, logger.Fields{
			"cpf": req.CPF,
		})
		return failure[models.AccountResponse]("failed to create account", "Unable to create account right now", err), err
	}

	summary, err := s.bank.Summary(ctx, usecase.AccountRef{Number: account.Number(), Agency: account.Agency()})
	if err != nil {
		return failure[models.AccountResponse]("failed to create account", "Unable to create account right now", err), err
	}

	response := toAccountResponse(summary)
	logger.Info("account service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"agencyNumber":  response.AgencyNumber,
		"cpf":           response.ClientCPF,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string, agencyNumber string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
		"agencyNumber":  agencyNumber,
	})

	ref, err := parseAccountRef(accountNumber, agencyNumber, s.bank.Agency())
	if err != nil {
		return failure[models.AccountResponse]("failed to get account", "Unable to fetch account right now", err), err
	}

	summary, err := s.bank.Summary(ctx, ref)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"account": ref.String(),
		})
		return failure[models.AccountResponse]("failed to get account", "Unable to fetch account right now", err), err
	}

	return commons.SuccessResponse("account fetched successfully", toAccountResponse(summary)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	logger.Info("account service list accounts request", nil)

	summaries, err := s.bank.Accounts(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return failure[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now", err), err
	}

	response := toAccountResponses(summaries)
	logger.Info("account service list accounts success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AccountService) SignIn(ctx context.Context, req models.SignInRequest) (commons.Response[models.SignInResponse], error) {
	logger.Info("account service sign in request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service sign in validation failed", err, nil)
		return commons.ValidationResponse[models.SignInResponse](err), validationError(err)
	}

	cpf, err := parseCPF(req.CPF)
	if err != nil {
		return failure[models.SignInResponse]("failed to sign in", "Unable to sign in right now", err), err
	}
	ref, err := parseAccountRef(req.AccountNumber, req.AgencyNumber, s.bank.Agency())
	if err != nil {
		return failure[models.SignInResponse]("failed to sign in", "Unable to sign in right now", err), err
	}

	pin := strings.TrimSpace(req.Pin)
	if pin != "" {
		_, err = s.bank.SignInWithPin(ctx, cpf, ref, pin)
	} else {
		_, err = s.bank.SignIn(ctx, cpf, ref)
	}
	if err != nil {
		logger.Info("account service sign in rejected", logger.Fields{
			"cpf":     req.CPF,
			"account": ref.String(),
			"reason":  err.Error(),
		})
		if errors.Is(err, domain.ErrInvalidPin) {
			return commons.ErrorResponse[models.SignInResponse]("invalid pin", "provided pin does not match"), err
		}
		return failure[models.SignInResponse]("failed to sign in", "Unable to sign in right now", err), err
	}

	summary, err := s.bank.Summary(ctx, ref)
	if err != nil {
		return failure[models.SignInResponse]("failed to sign in", "Unable to sign in right now", err), err
	}

	response := models.SignInResponse{
		Account:       toAccountResponse(summary),
		PinVerified:   pin != "",
		Authenticated: true,
	}

	logger.Info("account service sign in success", logger.Fields{
		"account":     ref.String(),
		"pinVerified": response.PinVerified,
	})

	return commons.SuccessResponse("signed in successfully", response), nil
}

func (s *AccountService) GetStatement(ctx context.Context, accountNumber string, agencyNumber string) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service get statement request", logger.Fields{
		"accountNumber": accountNumber,
		"agencyNumber":  agencyNumber,
	})

	ref, err := parseAccountRef(accountNumber, agencyNumber, s.bank.Agency())
	if err != nil {
		return failure[models.StatementResponse]("failed to get statement", "Unable to build statement right now", err), err
	}

	statement, err := s.bank.Statement(ctx, ref)
	if err != nil {
		logger.Error("account service get statement failed", err, logger.Fields{
			"account": ref.String(),
		})
		return failure[models.StatementResponse]("failed to get statement", "Unable to build statement right now", err), err
	}

	response := toStatementResponse(statement)
	logger.Info("account service get statement success", logger.Fields{
		"account": ref.String(),
		"lines":   len(response.Lines),
	})

	return commons.SuccessResponse("statement generated successfully", response), nil
}

func (s *AccountService) ListTransactions(ctx context.Context, accountNumber string, agencyNumber string, transactionType string) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("account service list transactions request", logger.Fields{
		"accountNumber": accountNumber,
		"agencyNumber":  agencyNumber,
		"type":          transactionType,
	})

	ref, err := parseAccountRef(accountNumber, agencyNumber, s.bank.Agency())
	if err != nil {
		return failure[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now", err), err
	}

	var filter domain.TransactionFilter
	if strings.TrimSpace(transactionType) != "" {
		kind, err := domain.ParseTransactionKind(transactionType)
		if err != nil {
			err = validationError(err)
			return failure[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now", err), err
		}
		filter = domain.OfKind(kind)
	}

	account, err := s.bank.SearchAccount(ctx, ref)
	if err != nil {
		return failure[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now", err), err
	}

	transactions, err := s.bank.Transactions(ctx, ref, filter)
	if err != nil {
		logger.Error("account service list transactions failed", err, logger.Fields{
			"account": ref.String(),
		})
		return failure[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now", err), err
	}

	response := make([]models.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, toTransactionResponse(tx, account))
	}

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}
