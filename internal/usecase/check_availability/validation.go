package check_availability

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/pkg/timeutil"
)

// resolveStart собирает момент начала из строк даты и времени.
// Нечитаемая дата или время подменяются компонентами now: операция
// тотальна над своим входом и никогда не падает из-за формата.
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
