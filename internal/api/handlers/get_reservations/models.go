package get_reservations

import (
	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// ReservationItem бронь в ответе списка
type ReservationItem struct {
	ReservationID   string   `json:"reservationId"`
	CustomerName    string   `json:"customerName"`
	ContactInfo     string   `json:"contactInfo"`
	PartySize       int      `json:"partySize"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	DurationMinutes int      `json:"durationMinutes"`
	TableIDs        []string `json:"tableIds,omitempty"`
	Type            string   `json:"type"`
	Notes           string   `json:"notes,omitempty"`
}

// GetReservationsResponse HTTP response model
type GetReservationsResponse struct {
	Reservations []ReservationItem `json:"reservations"`
	Total        int               `json:"total"`
}

// FromDomain конвертирует брони в HTTP response
func FromDomain(list []domain.Reservation) *GetReservationsResponse {
	items := make([]ReservationItem, 0, len(list))
	for _, res := range list {
		items = append(items, ReservationItem{
			ReservationID:   res.ID,
			CustomerName:    res.CustomerName,
			ContactInfo:     res.ContactInfo,
			PartySize:       res.PartySize,
			Date:            res.StartTime.Format(domain.DateFormat),
			Time:            res.StartTime.Format(domain.TimeFormat),
			DurationMinutes: res.DurationMinutes,
			TableIDs:        res.TableIDs,
			Type:            string(res.Type),
			Notes:           res.Notes,
		})
	}
	return &GetReservationsResponse{
		Reservations: items,
		Total:        len(items),
	}
}
