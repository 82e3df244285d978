package utils

import "time"

// CalculateRating - рейтинг корабля: speed * k * 80 / (3019 - год выпуска + 1),
// k = 0.5 для б/у корабля, результат округляется до двух знаков
func CalculateRating(speed float64, isUsed bool, prodDate time.Time) float64 {
	k := 1.0
	if isUsed {
		k = 0.5
	}
	year := prodDate.UTC().Year()
	return Round2(speed * k * 80 / float64(3019-year+1))
}
