package menu

import (
	"strings"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Service разрешает свободный текст названий блюд против каталога
// и считает детерминированные итоги заказов.
//
// Каталог фиксируется при создании сервиса и дальше не меняется.
type Service struct {
	entries []domain.CatalogEntry
	logger  Logger
}

// NewService создает сервис меню над плоским каталогом.
// Порядок entries - порядок объявления каталога (specials первыми);
// он и служит приоритетом при неоднозначном совпадении.
func NewService(catalog domain.MenuCatalog, logger Logger) *Service {
	return &Service{
		entries: catalog.Flatten(),
		logger:  logger,
	}
}

// Resolve разрешает свободный текст в позицию каталога.
//
// Порядок сопоставления:
//  1. точное совпадение имени без учета регистра;
//  2. первая в порядке объявления позиция, чье имя содержит запрос
//     как подстроку без учета регистра;
//  3. ничего не найдено.
//
// Намеренно никакой более умной нечеткости: порядок объявления каталога -
// фактический приоритет разрешения, и он должен сохраняться.
func (s *Service) Resolve(query string) (domain.CatalogEntry, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, e := range s.entries {
		if strings.ToLower(e.Name) == q {
			return e, true
		}
	}

	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			return e, true
		}
	}

	return domain.CatalogEntry{}, false
}

// ProcessOrder разрешает каждую позицию независимо, в порядке запроса.
//
// Повторы не схлопываются: два одинаковых названия дают две строки заказа
// и двойную цену. Пустой список - это нулевой итог, не ошибка.
func (s *Service) ProcessOrder(names []string) *OrderResult {
	result := &OrderResult{
		Items:      []OrderLine{},
		Unresolved: []string{},
	}

	for _, name := range names {
		entry, ok := s.Resolve(name)
		if !ok {
			s.logger.Warn("ProcessOrder: unresolved item %q", name)
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		result.Items = append(result.Items, OrderLine{Name: entry.Name, Price: entry.Price})
		result.Total += entry.Price
	}

	s.logger.Info("ProcessOrder: %d requested, %d resolved, %d unresolved, total=%.2f",
		len(names), len(result.Items), len(result.Unresolved), result.Total)

	return result
}
