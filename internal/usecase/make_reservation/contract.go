package make_reservation

import (
	"context"
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/internal/service/menu"
	findTable "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
)

// TableAllocator интерфейс движка размещения
type TableAllocator interface {
	Execute(req *findTable.Request) *findTable.Result
}

// ReservationStore интерфейс хранилища броней
type ReservationStore interface {
	Create(res domain.Reservation)
}

// MenuService интерфейс обсчета заказов
type MenuService interface {
	ProcessOrder(names []string) *menu.OrderResult
}

// TransactionManager интерфейс критической секции.
// Подбор стола и запись брони обязаны выполняться в одной секции:
// "найти" и "зафиксировать" - это read-then-write гонка при интерливинге.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс бизнес-метрик (допускает выключенные метрики)
type MetricsRecorder interface {
	ReservationCreated(resType string)
	ManagerEscalated()
	ItemsUnresolved(n int)
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
