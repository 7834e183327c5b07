package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/accounts", wrapAuth(c.accounts, authMiddleware))
	mux.Handle("/accounts/detail", wrapAuth(c.getAccount, authMiddleware))
	mux.Handle("/accounts/sign-in", wrapAuth(c.signIn, authMiddleware))
	mux.Handle("/accounts/statement", wrapAuth(c.getStatement, authMiddleware))
	mux.Handle("/accounts/transactions", wrapAuth(c.listTransactions, authMiddleware))
}

func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createAccount(w, r)
	case http.MethodGet:
		c.listAccounts(w, r)
	default:
		methodNotAllowed[models.AccountResponse](w, r, time.Now(), http.MethodGet, http.MethodPost)
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if !decodeBody[models.CreateAccountRequest, models.AccountResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.AccountResponse](w, r, start, http.MethodGet)
		return
	}

	query := r.URL.Query()
	response, err := c.service.GetAccount(r.Context(), query.Get("accountNumber"), query.Get("agencyNumber"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) signIn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		methodNotAllowed[models.SignInResponse](w, r, start, http.MethodPost)
		return
	}

	var req models.SignInRequest
	if !decodeBody[models.SignInRequest, models.SignInResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.SignIn(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) getStatement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.StatementResponse](w, r, start, http.MethodGet)
		return
	}

	query := r.URL.Query()
	response, err := c.service.GetStatement(r.Context(), query.Get("accountNumber"), query.Get("agencyNumber"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.TransactionResponse](w, r, start, http.MethodGet)
		return
	}

	query := r.URL.Query()
	response, err := c.service.ListTransactions(r.Context(), query.Get("accountNumber"), query.Get("agencyNumber"), query.Get("type"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}
