package get_info

import (
	"net/http"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
)

type Handler struct {
	service InfoService
	logger  Logger
}

func NewHandler(service InfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/info?category=menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result := h.service.Get(category)

	h.logger.Info("GET /info - category=%q", category)
	handlers.RespondJSON(w, http.StatusOK, result)
}
