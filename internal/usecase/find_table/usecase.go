package find_table

import (
	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// UseCase движок размещения: подбирает лучший стол или легальную пару
// столов под компанию на запрошенный интервал.
type UseCase struct {
	registry TableRegistry
	checker  AvailabilityChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр движка размещения
func NewUseCase(registry TableRegistry, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		checker:  checker,
		logger:   logger,
	}
}

// Execute подбирает вариант размещения.
//
// Политика, по порядку:
//  1. Компания >= 10 человек - немедленная эскалация менеджеру, поиск не выполняется.
//  2. Каждая посадка занимает столы ровно 90 минут независимо от размера компании.
//  3. Одиночные столы: кандидаты с maxCapacity >= partySize и
//     minCapacity <= partySize+1; score = maxCapacity - partySize.
//  4. Пары: каждая неупорядоченная пара (t1, t2) с t2 из t1.combinableWith
//     проверяется ровно один раз; годится при combinedMax >= partySize;
//     score = (combinedMax - partySize) + 1.5 - штраф делает объединение
//     строго хуже одиночного стола с теми же потерями.
//  5. Побеждает минимальный score; при равенстве - первый вычисленный
//     (одиночные раньше пар, внутри поиска - порядок объявления реестра).
//
// Возвращает nil, когда ни один вариант не доступен.
func (uc *UseCase) Execute(req *Request) *Result {
	if req.PartySize >= domain.ManagerPartyThreshold {
		uc.logger.Warn("FindTable: party of %d requires manager, no search performed", req.PartySize)
		return &Result{RequiresManager: true}
	}

	duration := domain.DineInDurationMinutes
	all := uc.registry.All()

	var best *Result

	// Стратегия 1: одиночные столы
	for _, table := range all {
		if !table.FitsParty(req.PartySize) {
			continue
		}
		if !uc.checker.IsAvailable([]string{table.ID}, req.StartTime, duration) {
			continue
		}

		score := float64(table.MaxCapacity - req.PartySize)
		if best == nil || score < best.Score {
			best = &Result{TableIDs: []string{table.ID}, Score: score}
		}
	}

	// Стратегия 2: объединяемые пары
	checkedPairs := make(map[string]bool)

	for _, t1 := range all {
		if !t1.IsCombinable {
			continue
		}
		for _, t2ID := range t1.CombinableWith {
			key := pairKey(t1.ID, t2ID)
			if checkedPairs[key] {
				continue
			}
			checkedPairs[key] = true

			// Данные не обязаны быть симметричными или валидными:
			// ссылку на несуществующий стол просто пропускаем
			t2, err := uc.registry.GetByID(t2ID)
			if err != nil {
				uc.logger.Warn("FindTable: table %s lists unknown partner %s", t1.ID, t2ID)
				continue
			}

			combinedMax := t1.MaxCapacity + t2.MaxCapacity
			if combinedMax < req.PartySize {
				continue
			}

			if !uc.checker.IsAvailable([]string{t1.ID, t2.ID}, req.StartTime, duration) {
				continue
			}

			score := float64(combinedMax-req.PartySize) + domain.CombinationScorePenalty
			if best == nil || score < best.Score {
				best = &Result{TableIDs: []string{t1.ID, t2.ID}, Score: score}
			}
		}
	}

	if best == nil {
		uc.logger.Info("FindTable: no option for party=%d at %s",
			req.PartySize, req.StartTime.Format(domain.TimeFormat))
		return nil
	}

	uc.logger.Info("FindTable: party=%d at %s -> tables=%v score=%.1f",
		req.PartySize, req.StartTime.Format(domain.TimeFormat), best.TableIDs, best.Score)
	return best
}

// pairKey канонический ключ неупорядоченной пары столов
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}
