package check_availability

import (
	"net/http"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPartySize   = "размер компании должен быть положительным"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PartySize <= 0 {
		h.logger.Warn("POST /availability/check - Invalid party size: %d", req.PartySize)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())

	h.logger.Info("POST /availability/check - party=%d available=%t manager=%t",
		req.PartySize, result.Available, result.RequiresManager)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
