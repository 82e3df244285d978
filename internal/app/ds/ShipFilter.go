package ds

import (
	"fmt"
	"strings"
)

// Поле сортировки списка кораблей
type ShipSort string

const (
	ShipSortID     ShipSort = "ID"
	ShipSortSpeed  ShipSort = "SPEED"
	ShipSortDate   ShipSort = "DATE"
	ShipSortRating ShipSort = "RATING"
)

// Column - колонка таблицы ships для сортировки
func (s ShipSort) Column() (string, bool) {
	switch s {
	case ShipSortID:
		return "id", true
	case ShipSortSpeed:
		return "speed", true
	case ShipSortDate:
		return "prod_date", true
	case ShipSortRating:
		return "rating", true
	}
	return "", false
}

// ShipFilter - набор критериев фильтрации, nil означает отсутствие критерия.
// Критерии объединяются по И; after/before задают полуоткрытый интервал
// по prod_date, остальные диапазоны включительные.
type ShipFilter struct {
	Name        *string   `form:"name"`
	Planet      *string   `form:"planet"`
	ShipType    *ShipType `form:"shipType"`
	After       *int64    `form:"after"`
	Before      *int64    `form:"before"`
	IsUsed      *bool     `form:"isUsed"`
	MinSpeed    *float64  `form:"minSpeed"`
	MaxSpeed    *float64  `form:"maxSpeed"`
	MinCrewSize *int      `form:"minCrewSize"`
	MaxCrewSize *int      `form:"maxCrewSize"`
	MinRating   *float64  `form:"minRating"`
	MaxRating   *float64  `form:"maxRating"`
}

// CacheKey - каноническое строковое представление фильтра для ключей кэша
func (f ShipFilter) CacheKey() string {
	parts := make([]string, 0, 12)
	add := func(name string, v interface{}) {
		parts = append(parts, fmt.Sprintf("%s=%v", name, v))
	}
	if f.Name != nil {
		add("name", *f.Name)
	}
	if f.Planet != nil {
		add("planet", *f.Planet)
	}
	if f.ShipType != nil {
		add("shipType", *f.ShipType)
	}
	if f.After != nil {
		add("after", *f.After)
	}
	if f.Before != nil {
		add("before", *f.Before)
	}
	if f.IsUsed != nil {
		add("isUsed", *f.IsUsed)
	}
	if f.MinSpeed != nil {
		add("minSpeed", *f.MinSpeed)
	}
	if f.MaxSpeed != nil {
		add("maxSpeed", *f.MaxSpeed)
	}
	if f.MinCrewSize != nil {
		add("minCrewSize", *f.MinCrewSize)
	}
	if f.MaxCrewSize != nil {
		add("maxCrewSize", *f.MaxCrewSize)
	}
	if f.MinRating != nil {
		add("minRating", *f.MinRating)
	}
	if f.MaxRating != nil {
		add("maxRating", *f.MaxRating)
	}
	return strings.Join(parts, "|")
}
