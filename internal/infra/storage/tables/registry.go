package tables

import (
	"fmt"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Registry реестр физических столов зала.
// Неизменяемая стартовая конфигурация: создается один раз, дальше только чтение.
// Порядок столов - порядок объявления в файле данных; движок подбора
// опирается на него как на детерминированный порядок перебора.
type Registry struct {
	tables []domain.Table
	byID   map[string]int
}

// NewRegistry создает реестр из списка столов в порядке объявления
func NewRegistry(tbls []domain.Table) *Registry {
	byID := make(map[string]int, len(tbls))
	for i, t := range tbls {
		byID[t.ID] = i
	}
	return &Registry{tables: tbls, byID: byID}
}

// All возвращает все столы в порядке объявления
func (r *Registry) All() []domain.Table {
	out := make([]domain.Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// GetByID возвращает стол по идентификатору
func (r *Registry) GetByID(id string) (*domain.Table, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	t := r.tables[i]
	return &t, nil
}

// Len возвращает количество столов в реестре
func (r *Registry) Len() int {
	return len(r.tables)
}
