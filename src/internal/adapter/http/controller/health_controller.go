package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/commons"
)

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// RegisterRoutes leaves /health outside authentication.
func (c *HealthController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.HandleFunc("/health", c.health)
}

func (c *HealthController) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed[HealthResponse](w, r, time.Now(), http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("ok", HealthResponse{
		Status: "up",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}))
}
