package reservations

import (
	"strings"
	"sync"
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/pkg/timeutil"
)

// Store хранилище броней в памяти процесса.
//
// Чистый контейнер данных: никакой валидации здесь нет - доступность и
// сменная политика проверяются выше, в usecase бронирования, до вызова
// Create. Это делает решение о размещении отдельным проверяемым шагом.
//
// Mutex защищает от конкурентных вызовов HTTP-слоя; атомарность
// последовательности "проверить доступность → записать" обеспечивается
// выше через общую критическую секцию (pkg/txmanager).
type Store struct {
	mu           sync.Mutex
	reservations []domain.Reservation
}

// NewStore создает пустое хранилище броней
func NewStore() *Store {
	return &Store{}
}

// Create добавляет бронь в хранилище
func (s *Store) Create(res domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, res)
}

// CancelByID удаляет бронь по идентификатору.
// Удаление несуществующего id - no-op, не ошибка.
// Возвращает true, если бронь была найдена и удалена.
func (s *Store) CancelByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, res := range s.reservations {
		if res.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName ищет брони по подстроке имени клиента без учета регистра.
// Порядок вставки сохраняется: первый элемент результата - самая ранняя бронь.
func (s *Store) FindByName(query string) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []domain.Reservation
	for _, res := range s.reservations {
		if strings.Contains(strings.ToLower(res.CustomerName), q) {
			out = append(out, res)
		}
	}
	return out
}

// ListForDate возвращает брони на указанный календарный день
func (s *Store) ListForDate(date time.Time) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Reservation
	for _, res := range s.reservations {
		if timeutil.SameCalendarDay(res.StartTime, date) {
			out = append(out, res)
		}
	}
	return out
}

// List возвращает все брони в порядке вставки
func (s *Store) List() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}
