package cancel_reservation

import "github.com/m04kA/LDV-ReservationService/internal/domain"

// Request запрос на отмену брони.
// Date и Time принимаются от диспетчера, но при поиске не участвуют:
// бронь ищется по имени, отменяется первое совпадение.
type Request struct {
	CustomerName string
	Date         string
	Time         string
}

// Response результат отмены
type Response struct {
	ReservationID string
	CustomerName  string
	Type          domain.ReservationType
}
