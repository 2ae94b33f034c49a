package get_reservations

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

type ReservationStore interface {
	List() []domain.Reservation
	ListForDate(date time.Time) []domain.Reservation
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
