package make_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/pkg/timeutil"
)

// validateRequest валидирует входные данные запроса.
// Для подтверждения всегда нужны имя и контакт.
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.ContactInfo == "" {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}
	switch req.Type {
	case domain.TypeDineIn, domain.TypeTakeaway:
	default:
		return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}
	if req.Type == domain.TypeDineIn && req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive for dine-in", ErrInvalidInput)
	}
	return nil
}

// resolveStart собирает момент начала из строк даты и времени.
// Нечитаемая дата или время подменяются компонентами now.
func resolveStart(dateStr, timeStr string, now time.Time) time.Time {
	date := now
	if parsed, err := time.ParseInLocation(domain.DateFormat, dateStr, now.Location()); err == nil {
		date = parsed
	}

	hour, minute := now.Hour(), now.Minute()
	if parsed, err := time.Parse(domain.TimeFormat, timeStr); err == nil {
		hour, minute = parsed.Hour(), parsed.Minute()
	}

	return timeutil.AtTime(date, hour, minute)
}
