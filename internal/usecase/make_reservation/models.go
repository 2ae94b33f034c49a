package make_reservation

import (
	"time"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Специальные значения Notes: диспетчер помечает ими запрос на обратный
// звонок менеджера вместо автобронирования
const (
	NoteManagerCallbackIT = "RICHIEDE_RICHIAMATA_MANAGER"
	NoteManagerCallbackEN = "REQUIRES_MANAGER_CALLBACK"
)

// Request запрос на создание брони.
// Date и Time - строки "YYYY-MM-DD" и "HH:mm"; нечитаемые значения
// молча заменяются текущими датой и временем.
type Request struct {
	PartySize    int
	Date         string
	Time         string
	CustomerName string
	ContactInfo  string
	Notes        string
	Type         domain.ReservationType
	Items        []string // только для takeaway: список названий блюд
}

// Response результат создания брони
type Response struct {
	ReservationID string
	Type          domain.ReservationType
	TableIDs      []string
	StartTime     time.Time

	// TotalCost заполнен только для takeaway, формат "€47"
	TotalCost string

	// ManagerCallback: бронь не создавалась, запрос передан менеджеру
	ManagerCallback bool
}
