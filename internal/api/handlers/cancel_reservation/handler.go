package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
	cancelReservation "github.com/m04kA/LDV-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "для отмены нужно имя клиента"
	msgReservationNotFound = "бронь с таким именем не найдена"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/cancel - Not found: name=%q", req.CustomerName)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Cancelled: id=%s name=%q",
		result.ReservationID, result.CustomerName)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
