package check_availability

// Request запрос проверки доступности.
// Date и Time - строки "YYYY-MM-DD" и "HH:mm"; нечитаемые значения
// молча заменяются текущими датой и временем (осознанный выбор для
// живого разговорного контекста, где переспрос дорог).
type Request struct {
	PartySize int
	Date      string
	Time      string
}

// Response результат проверки.
//
// Message всегда заполнен и озвучивается диспетчером как есть.
// SuggestedTime непустой только у советующих исходов: он говорит,
// на какое время перенести последующий вызов бронирования.
// Совет не подменяет сырой результат доступности - он идет рядом с ним.
type Response struct {
	Available       bool
	TableIDs        []string
	Message         string
	RequiresManager bool
	SuggestedTime   string
}
