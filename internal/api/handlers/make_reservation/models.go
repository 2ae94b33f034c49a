package make_reservation

import (
	"github.com/m04kA/LDV-ReservationService/internal/domain"
	makeReservation "github.com/m04kA/LDV-ReservationService/internal/usecase/make_reservation"
)

// MakeReservationRequest HTTP request model
type MakeReservationRequest struct {
	PartySize    int      `json:"partySize,omitempty"`
	Date         string   `json:"date,omitempty"` // "2025-10-15"
	Time         string   `json:"time,omitempty"` // "20:00"
	CustomerName string   `json:"customerName"`
	ContactInfo  string   `json:"contactInfo"`
	Notes        string   `json:"notes,omitempty"`
	Type         string   `json:"type,omitempty"` // "dine-in" | "takeaway"
	Items        []string `json:"items,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID   string   `json:"reservationId,omitempty"`
	Type            string   `json:"type"`
	TableIDs        []string `json:"tableIds,omitempty"`
	Date            string   `json:"date,omitempty"`
	Time            string   `json:"time,omitempty"`
	TotalCost       string   `json:"totalCost,omitempty"`
	ManagerCallback bool     `json:"managerCallback,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MakeReservationRequest) ToUseCaseRequest() *makeReservation.Request {
	return &makeReservation.Request{
		PartySize:    r.PartySize,
		Date:         r.Date,
		Time:         r.Time,
		CustomerName: r.CustomerName,
		ContactInfo:  r.ContactInfo,
		Notes:        r.Notes,
		Type:         domain.ReservationType(r.Type),
		Items:        r.Items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *makeReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		ReservationID:   resp.ReservationID,
		Type:            string(resp.Type),
		TableIDs:        resp.TableIDs,
		TotalCost:       resp.TotalCost,
		ManagerCallback: resp.ManagerCallback,
	}
	if !resp.StartTime.IsZero() {
		out.Date = resp.StartTime.Format(domain.DateFormat)
		out.Time = resp.StartTime.Format(domain.TimeFormat)
	}
	return out
}
