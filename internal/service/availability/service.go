package availability

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Service проверяет конфликты столов по времени против текущего набора броней
type Service struct {
	store    ReservationStore
	registry TableRegistry
	logger   Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(store ReservationStore, registry TableRegistry, logger Logger) *Service {
	return &Service{
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// IsAvailable проверяет, свободен ли набор столов на интервале
// [start, start+durationMinutes).
//
// Возвращает false, если хоть одна существующая бронь (любого типа)
// делит стол с запрошенным набором И ее интервал пересекается с запрошенным.
// Takeaway-брони столов не держат и конфликтовать не могут.
// Граничные случаи не считаются конфликтом: бронь, заканчивающаяся ровно
// в момент начала запроса, не мешает.
func (s *Service) IsAvailable(tableIDs []string, start time.Time, durationMinutes int) bool {
	for _, res := range s.store.List() {
		if res.ConflictsWith(tableIDs, start, durationMinutes) {
			return false
		}
	}
	return true
}

// TableStatusAt возвращает статус каждого стола на момент snapshot.
// Стол OCCUPIED, если минутный пробный интервал от snapshot конфликтует
// с какой-либо бронью. Это точечный снимок без учета смен: сменная
// семантика - забота вызывающего слоя представления.
func (s *Service) TableStatusAt(snapshot time.Time) map[string]domain.TableStatus {
	statuses := make(map[string]domain.TableStatus)

	for _, table := range s.registry.All() {
		statuses[table.ID] = domain.TableStatusFree
		if !s.IsAvailable([]string{table.ID}, snapshot, domain.StatusProbeMinutes) {
			statuses[table.ID] = domain.TableStatusOccupied
		}
	}

	return statuses
}
