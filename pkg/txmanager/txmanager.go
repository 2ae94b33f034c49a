package txmanager

import (
	"context"
	"sync"
)

// Manager сериализует критические секции движка бронирования.
//
// Хранилище живет в памяти одного процесса, поэтому вместо транзакций БД
// используется один mutex на весь набор броней: последовательность
// "найти стол" → "зафиксировать бронь" выполняется внутри одной секции Do,
// иначе два конкурентных вызова могут забронировать один и тот же стол.
type Manager struct {
	mu sync.Mutex
}

// NewManager создает новый менеджер критических секций
func NewManager() *Manager {
	return &Manager{}
}

// Do выполняет fn в эксклюзивной критической секции
// Ошибка fn возвращается как есть
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
