package get_table_status

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

type TableRegistry interface {
	All() []domain.Table
}

type StatusService interface {
	TableStatusAt(snapshot time.Time) map[string]domain.TableStatus
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
