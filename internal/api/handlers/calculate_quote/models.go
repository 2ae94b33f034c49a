package calculate_quote

import (
	"fmt"

	"github.com/m04kA/LDV-ReservationService/internal/service/menu"
)

// CalculateQuoteRequest HTTP request model
type CalculateQuoteRequest struct {
	Items []string `json:"items"`
}

// QuoteLine позиция заказа в ответе
type QuoteLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CalculateQuoteResponse HTTP response model
type CalculateQuoteResponse struct {
	Total      float64     `json:"total"`
	TotalText  string      `json:"totalText"` // "€47", как озвучивает диспетчер
	Items      []QuoteLine `json:"items"`
	Unresolved []string    `json:"unresolved"`
}

// FromOrderResult конвертирует результат обсчета в HTTP response
func FromOrderResult(result *menu.OrderResult) *CalculateQuoteResponse {
	items := make([]QuoteLine, 0, len(result.Items))
	for _, line := range result.Items {
		items = append(items, QuoteLine{Name: line.Name, Price: line.Price})
	}
	return &CalculateQuoteResponse{
		Total:      result.Total,
		TotalText:  fmt.Sprintf("€%.0f", result.Total),
		Items:      items,
		Unresolved: result.Unresolved,
	}
}
