package get_table_status

import (
	"net/http"
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/api/handlers"
	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/pkg/timeutil"
)

type Handler struct {
	registry     TableRegistry
	status       StatusService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(registry TableRegistry, status StatusService, logger Logger) *Handler {
	return &Handler{
		registry:     registry,
		status:       status,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/tables/status?date=2025-10-15&time=20:00
//
// Нечитаемые date и time молча заменяются текущими, как и в остальных
// разговорных операциях.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.timeProvider.Now()

	snapshot := timeutil.AtTime(now, now.Hour(), now.Minute())
	if parsed, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), now.Location()); err == nil {
		snapshot = timeutil.AtTime(parsed, now.Hour(), now.Minute())
	}
	if parsed, err := time.Parse(domain.TimeFormat, r.URL.Query().Get("time")); err == nil {
		snapshot = timeutil.AtTime(snapshot, parsed.Hour(), parsed.Minute())
	}

	statuses := h.status.TableStatusAt(snapshot)
	resp := buildResponse(h.registry.All(), statuses,
		snapshot.Format(domain.DateFormat), snapshot.Format(domain.TimeFormat))

	h.logger.Info("GET /tables/status - snapshot=%s %s tables=%d",
		resp.Date, resp.Time, len(resp.Tables))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
