package calculate_quote

import (
	"github.com/m04kA/LDV-ReservationService/internal/service/menu"
)

type QuoteService interface {
	ProcessOrder(names []string) *menu.OrderResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
