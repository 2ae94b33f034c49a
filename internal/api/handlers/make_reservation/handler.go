package make_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
	makeReservation "github.com/m04kA/LDV-ReservationService/internal/usecase/make_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNoTableAvailable   = "нет свободных столов на выбранное время"
	msgManagerRequired    = "для компании такого размера бронирует менеджер, он перезвонит"
	msgItemsNotOnMenu     = "ERRORE: questi piatti non sono sul menù: %s. Chiedi al cliente di correggere l'ordine."
)

type Handler struct {
	useCase MakeReservationUseCase
	logger  Logger
}

func NewHandler(useCase MakeReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MakeReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var unresolved *makeReservation.UnresolvedItemsError

		switch {
		case errors.Is(err, makeReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, makeReservation.ErrNoTableAvailable):
			h.logger.Warn("POST /reservations - No table: party=%d time=%q", req.PartySize, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgNoTableAvailable)

		case errors.Is(err, makeReservation.ErrManagerRequired):
			h.logger.Warn("POST /reservations - Manager required: party=%d", req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgManagerRequired)

		case errors.As(err, &unresolved):
			h.logger.Warn("POST /reservations - Items not on menu: %v", unresolved.Names)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgItemsNotOnMenu, strings.Join(unresolved.Names, ", ")))

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Created: id=%s type=%s tables=%v callback=%t",
		result.ReservationID, result.Type, result.TableIDs, result.ManagerCallback)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
