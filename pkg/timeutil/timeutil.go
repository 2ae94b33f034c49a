package timeutil

import "time"

// Overlaps проверяет пересечение двух полуоткрытых интервалов [start, start+duration)
// Интервалы пересекаются, только если:
// - начало первого СТРОГО раньше конца второго И
// - конец первого СТРОГО позже начала второго
//
// Используем строгие неравенства, чтобы граничные случаи не считались пересечением:
// бронирование, заканчивающееся ровно в момент начала другого, не конфликтует.
//
// Примеры:
// - 11:30-12:00 и 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - 11:30-12:00 и 11:00-11:30 → НЕТ пересечения (граничат)
// - 11:30-12:00 и 12:00-12:30 → НЕТ пересечения (граничат)
func Overlaps(startA time.Time, durationA int, startB time.Time, durationB int) bool {
	endA := startA.Add(time.Duration(durationA) * time.Minute)
	endB := startB.Add(time.Duration(durationB) * time.Minute)
	return startA.Before(endB) && endA.After(startB)
}

// SameCalendarDay проверяет, что две даты относятся к одному и тому же календарному дню
// Сравнение по компонентам год/месяц/день в локальном времени, без нормализации таймзон
func SameCalendarDay(d1, d2 time.Time) bool {
	y1, m1, dd1 := d1.Date()
	y2, m2, dd2 := d2.Date()
	return y1 == y2 && m1 == m2 && dd1 == dd2
}

// AtTime возвращает дату date со временем hour:minute (локальные настенные часы)
func AtTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
