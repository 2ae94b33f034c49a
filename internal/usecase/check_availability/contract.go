package check_availability

import (
	"time"

	findTable "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
)

// TableAllocator интерфейс движка размещения
type TableAllocator interface {
	Execute(req *findTable.Request) *findTable.Result
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
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
