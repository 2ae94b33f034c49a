package cancel_reservation

import (
	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// ReservationStore интерфейс хранилища броней
type ReservationStore interface {
	FindByName(query string) []domain.Reservation
	CancelByID(id string) bool
}

// MetricsRecorder интерфейс бизнес-метрик (допускает выключенные метрики)
type MetricsRecorder interface {
	ReservationCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
