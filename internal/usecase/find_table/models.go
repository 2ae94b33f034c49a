package find_table

import "time"

// Request запрос на подбор стола
type Request struct {
	PartySize int       // размер компании
	StartTime time.Time // запрошенное время начала (локальные настенные часы)
}

// Result результат подбора.
//
// Три исхода:
//   - RequiresManager=true: автоподбор запрещен, нужен менеджер;
//   - RequiresManager=false, TableIDs непустой: лучший найденный вариант;
//   - nil (на уровне вызова): подходящих столов нет.
type Result struct {
	TableIDs []string // один стол или пара объединяемых
	Score    float64  // потерянные места; ниже - лучше

	RequiresManager bool
}
