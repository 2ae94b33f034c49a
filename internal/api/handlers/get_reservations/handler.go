package get_reservations

import (
	"net/http"
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	store  ReservationStore
	logger Logger
}

func NewHandler(store ReservationStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	var list []domain.Reservation
	if dateStr == "" {
		list = h.store.List()
	} else {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list = h.store.ListForDate(date)
	}

	h.logger.Info("GET /reservations - date=%q total=%d", dateStr, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(list))
}
