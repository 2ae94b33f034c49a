package cancel_reservation

import (
	cancelReservation "github.com/m04kA/LDV-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ReservationID string `json:"reservationId"`
	CustomerName  string `json:"customerName"`
	Type          string `json:"type"`
	Cancelled     bool   `json:"cancelled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest() *cancelReservation.Request {
	return &cancelReservation.Request{
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Time:         r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ReservationID: resp.ReservationID,
		CustomerName:  resp.CustomerName,
		Type:          string(resp.Type),
		Cancelled:     true,
	}
}
