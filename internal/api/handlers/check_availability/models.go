package check_availability

import (
	checkAvailability "github.com/m04kA/LDV-ReservationService/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	PartySize int    `json:"partySize"`
	Date      string `json:"date,omitempty"` // "2025-10-15"
	Time      string `json:"time,omitempty"` // "20:00"
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available       bool     `json:"available"`
	TableIDs        []string `json:"tableIds,omitempty"`
	Message         string   `json:"message"`
	RequiresManager bool     `json:"requiresManager,omitempty"`
	SuggestedTime   string   `json:"suggestedTime,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		PartySize: r.PartySize,
		Date:      r.Date,
		Time:      r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available:       resp.Available,
		TableIDs:        resp.TableIDs,
		Message:         resp.Message,
		RequiresManager: resp.RequiresManager,
		SuggestedTime:   resp.SuggestedTime,
	}
}
