package get_table_status

import (
	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// TableStatusItem стол со статусом на момент снимка
type TableStatusItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MinCapacity int    `json:"minCapacity"`
	MaxCapacity int    `json:"maxCapacity"`
	Status      string `json:"status"`
}

// GetTableStatusResponse HTTP response model
type GetTableStatusResponse struct {
	Date   string            `json:"date"`
	Time   string            `json:"time"`
	Tables []TableStatusItem `json:"tables"`
}

// buildResponse собирает снимок в порядке объявления реестра
func buildResponse(tables []domain.Table, statuses map[string]domain.TableStatus, dateStr, timeStr string) *GetTableStatusResponse {
	items := make([]TableStatusItem, 0, len(tables))
	for _, table := range tables {
		items = append(items, TableStatusItem{
			ID:          table.ID,
			Name:        table.Name,
			MinCapacity: table.MinCapacity,
			MaxCapacity: table.MaxCapacity,
			Status:      string(statuses[table.ID]),
		})
	}
	return &GetTableStatusResponse{
		Date:   dateStr,
		Time:   timeStr,
		Tables: items,
	}
}
