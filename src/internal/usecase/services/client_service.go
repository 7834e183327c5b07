package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
)

type ClientService struct {
	bank ClientRegistry
}

func NewClientService(bank ClientRegistry) *ClientService {
	return &ClientService{bank: bank}
}

func (s *ClientService) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.RegisterClientResponse], error) {
	logger.Info("client service register client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service register client validation failed", err, nil)
		return commons.ValidationResponse[models.RegisterClientResponse](err), validationError(err)
	}

	client, err := buildClient(req)
	if err != nil {
		logger.Error("client service register client invalid identifiers", err, nil)
		return failure[models.RegisterClientResponse]("failed to register client", "Unable to register client right now", err), err
	}

	registered, err := s.bank.RegisterClient(ctx, client)
	if err != nil {
		logger.Error("client service register client failed", err, logger.Fields{
			"cpf": client.CPF().String(),
		})
		if errors.Is(err, domain.ErrDuplicateClient) {
			return commons.ErrorResponse[models.RegisterClientResponse]("client already registered", err.Error()), err
		}
		return failure[models.RegisterClientResponse]("failed to register client", "Unable to register client right now", err), err
	}

	response := models.RegisterClientResponse{
		Registered: registered,
		Client:     toClientResponse(client, nil),
	}

	logger.Info("client service register client success", logger.Fields{
		"cpf":    response.Client.CPF,
		"hasPin": response.Client.HasPin,
	})

	return commons.SuccessResponse("client registered successfully", response), nil
}

func (s *ClientService) GetClient(ctx context.Context, cpf string) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service get client request", logger.Fields{
		"cpf": cpf,
	})

	if strings.TrimSpace(cpf) == "" {
		err := validationError(errors.New("cpf is required"))
		return commons.ErrorResponse[models.ClientResponse]("validation failed", "cpf is required"), err
	}

	parsed, err := parseCPF(cpf)
	if err != nil {
		return failure[models.ClientResponse]("failed to get client", "Unable to fetch client right now", err), err
	}

	client, err := s.bank.SearchClient(ctx, parsed)
	if err != nil {
		logger.Error("client service get client failed", err, logger.Fields{
			"cpf": cpf,
		})
		return failure[models.ClientResponse]("failed to get client", "Unable to fetch client right now", err), err
	}

	accounts, err := s.bank.AccountsOf(ctx, parsed)
	if err != nil {
		logger.Error("client service get client accounts failed", err, logger.Fields{
			"cpf": cpf,
		})
		return failure[models.ClientResponse]("failed to get client", "Unable to fetch client right now", err), err
	}

	response := toClientResponse(client, accounts)
	logger.Info("client service get client success", logger.Fields{
		"cpf":      response.CPF,
		"accounts": len(response.Accounts),
	})

	return commons.SuccessResponse("client fetched successfully", response), nil
}

func buildClient(req models.RegisterClientRequest) (*domain.Client, error) {
	cpf, err := parseCPF(req.CPF)
	if err != nil {
		return nil, err
	}

	dob, err := domain.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	address := domain.NewAddress(req.Address.Street, req.Address.Number, req.Address.District, req.Address.City, req.Address.State)

	client, err := domain.NewClient(req.Name, cpf, dob, address)
	if err != nil {
		return nil, validationError(err)
	}

	if pin := strings.TrimSpace(req.Pin); pin != "" {
		if err := client.SetPin(pin); err != nil {
			return nil, fmt.Errorf("set client pin: %w", err)
		}
	}

	return client, nil
}

func toClientResponse(client *domain.Client, accounts []domain.AccountSummary) models.ClientResponse {
	return models.ClientResponse{
		Name:        client.Name(),
		CPF:         client.CPF().String(),
		DateOfBirth: client.DateOfBirth().String(),
		Address:     client.Address().String(),
		HasPin:      client.HasPin(),
		Accounts:    toAccountResponses(accounts),
	}
}
