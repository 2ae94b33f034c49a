package find_table

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// TableRegistry интерфейс реестра столов
type TableRegistry interface {
	All() []domain.Table
	GetByID(id string) (*domain.Table, error)
}

// AvailabilityChecker интерфейс движка доступности
type AvailabilityChecker interface {
	IsAvailable(tableIDs []string, start time.Time, durationMinutes int) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
