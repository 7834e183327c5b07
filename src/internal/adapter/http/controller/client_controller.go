package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
)

type ClientController struct {
	service service_interfaces.ClientService
}

func NewClientController(service service_interfaces.ClientService) *ClientController {
	return &ClientController{service: service}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/clients", wrapAuth(c.clients, authMiddleware))
}

func (c *ClientController) clients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.registerClient(w, r)
	case http.MethodGet:
		c.getClient(w, r)
	default:
		methodNotAllowed[models.ClientResponse](w, r, time.Now(), http.MethodGet, http.MethodPost)
	}
}

func (c *ClientController) registerClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterClientRequest
	if !decodeBody[models.RegisterClientRequest, models.RegisterClientResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.RegisterClient(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *ClientController) getClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetClient(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFromError(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}
