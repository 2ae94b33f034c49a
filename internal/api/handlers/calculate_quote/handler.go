package calculate_quote

import (
	"net/http"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/quote
//
// Чистый обсчет без фиксации заказа: пустой список позиций легален
// и дает нулевую сумму. Нераспознанные названия возвращаются дословно,
// решение о переспросе остается за диспетчером.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.service.ProcessOrder(req.Items)

	h.logger.Info("POST /orders/quote - items=%d resolved=%d unresolved=%d total=%.2f",
		len(req.Items), len(result.Items), len(result.Unresolved), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromOrderResult(result))
}
