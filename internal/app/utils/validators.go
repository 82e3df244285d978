package utils

import (
	"math/big"
	"strconv"
	"time"
	"unicode/utf8"
)

// Границы года выпуска - фиксированные моменты UTC, год от 2801 до 3018 включительно
var (
	prodDateMin = time.Date(2801, time.January, 1, 0, 0, 0, 0, time.UTC)
	prodDateMax = time.Date(3019, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Round2 - округление до двух знаков, половина вверх.
// Округляется десятичная запись числа, а не двоичное значение:
// 0.285 хранится как 0.28499999..., но должно давать 0.29.
func Round2(v float64) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return v
	}
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Div(r.Num(), r.Denom())
	rounded, _ := new(big.Rat).SetFrac(n, big.NewInt(100)).Float64()
	return rounded
}

// IsStringValid - проверка имени и планеты: от 1 до 50 символов
func IsStringValid(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= 50
}

// IsSpeedValid - округленная скорость должна попадать в [0.01, 0.99]
func IsSpeedValid(speed float64) bool {
	r := Round2(speed)
	return r >= 0.01 && r <= 0.99
}

// IsCrewSizeValid - экипаж от 1 до 9999
func IsCrewSizeValid(size int) bool {
	return size > 0 && size < 10000
}

// IsProdDateValid - дата выпуска внутри допустимого окна лет
func IsProdDateValid(date time.Time) bool {
	return !date.Before(prodDateMin) && date.Before(prodDateMax)
}
