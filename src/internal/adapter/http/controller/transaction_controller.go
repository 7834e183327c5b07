package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
)

type TransactionController struct {
	service service_interfaces.TransactionService
}

func NewTransactionController(service service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/deposits", wrapAuth(c.deposit, authMiddleware))
	mux.Handle("/withdrawals", wrapAuth(c.withdraw, authMiddleware))
	mux.Handle("/transfers", wrapAuth(c.transfer, authMiddleware))
}

func (c *TransactionController) deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		methodNotAllowed[models.TransactionResponse](w, r, start, http.MethodPost)
		return
	}

	var req models.DepositRequest
	if !decodeBody[models.DepositRequest, models.TransactionResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.Deposit(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *TransactionController) withdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		methodNotAllowed[models.TransactionResponse](w, r, start, http.MethodPost)
		return
	}

	var req models.WithdrawRequest
	if !decodeBody[models.WithdrawRequest, models.TransactionResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.Withdraw(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *TransactionController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		methodNotAllowed[models.TransactionResponse](w, r, start, http.MethodPost)
		return
	}

	var req models.TransferRequest
	if !decodeBody[models.TransferRequest, models.TransactionResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.Transfer(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}
