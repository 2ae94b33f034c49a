package info

import (
	"fmt"
	"strings"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service статическая справка о ресторане для диспетчера.
// Состояние движка не затрагивается: только чтение данных, загруженных при старте.
type Service struct {
	info    domain.RestaurantInfo
	catalog domain.MenuCatalog
	logger  Logger
}

// NewService создает сервис справочной информации
func NewService(restaurantInfo domain.RestaurantInfo, catalog domain.MenuCatalog, logger Logger) *Service {
	return &Service{
		info:    restaurantInfo,
		catalog: catalog,
		logger:  logger,
	}
}

// Get возвращает блок справки по категории.
// Неизвестная или пустая категория возвращает полную справку - диспетчеру
// полезнее лишний контекст, чем отказ.
func (s *Service) Get(category string) map[string]interface{} {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "menu":
		return map[string]interface{}{"menu": s.menuBlock()}
	case "hours":
		return map[string]interface{}{"hours": s.hoursBlock()}
	case "parking":
		return map[string]interface{}{"parking": s.info.Location.Parking}
	case "events":
		return map[string]interface{}{"events": s.info.Policies.Events}
	case "allergies":
		return map[string]interface{}{"allergies": s.info.Policies.Allergies}
	case "location":
		return map[string]interface{}{"location": s.locationBlock()}
	default:
		s.logger.Info("GetInfo: unknown category %q, returning full info", category)
		return map[string]interface{}{
			"location": s.locationBlock(),
			"hours":    s.hoursBlock(),
			"services": map[string]interface{}{
				"integrations": s.info.Services.Integrations,
				"takeaway":     s.info.Services.Takeaway,
			},
			"policies": map[string]interface{}{
				"allergies": s.info.Policies.Allergies,
				"events":    s.info.Policies.Events,
				"corkage":   s.info.Policies.Corkage,
			},
			"menu": s.menuBlock(),
		}
	}
}

func (s *Service) locationBlock() map[string]interface{} {
	return map[string]interface{}{
		"address":     s.info.Location.Address,
		"description": s.info.Location.Description,
		"parking":     s.info.Location.Parking,
	}
}

func (s *Service) hoursBlock() map[string]interface{} {
	return map[string]interface{}{
		"weekdays": s.info.Hours.Weekdays,
		"weekends": s.info.Hours.Weekends,
		"closed":   s.info.Hours.Closed,
		"notes":    s.info.Hours.Notes,
	}
}

// menuBlock отдает каталог в порядке объявления с ценами для озвучивания
func (s *Service) menuBlock() []map[string]interface{} {
	var categories []map[string]interface{}
	for _, cat := range s.catalog.Categories {
		var items []map[string]interface{}
		for _, item := range cat.Items {
			entry := map[string]interface{}{
				"name":  item.Name,
				"price": fmt.Sprintf("€%.0f", item.Price),
			}
			if item.Description != "" {
				entry["description"] = item.Description
			}
			items = append(items, entry)
		}
		categories = append(categories, map[string]interface{}{
			"category": cat.Name,
			"items":    items,
		})
	}
	return categories
}
