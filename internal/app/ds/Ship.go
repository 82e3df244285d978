package ds

import (
	"encoding/json"
	"time"
)

// Тип корабля - закрытое множество значений
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// ParseShipType - разбор типа корабля, неизвестные значения отклоняются
func ParseShipType(s string) (ShipType, bool) {
	t := ShipType(s)
	return t, t.Valid()
}

func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// @Schema(description="Ship model representing a space ship")
type Ship struct {
	ID       int       `gorm:"primaryKey;column:id" json:"id"`
	Name     string    `gorm:"column:name;size:50" json:"name"`
	Planet   string    `gorm:"column:planet;size:50" json:"planet"`
	ShipType ShipType  `gorm:"column:ship_type;size:20" json:"shipType"`
	ProdDate time.Time `gorm:"column:prod_date" json:"-"`
	IsUsed   bool      `gorm:"column:is_used" json:"isUsed"`
	Speed    float64   `gorm:"column:speed" json:"speed"`
	CrewSize int       `gorm:"column:crew_size" json:"crewSize"`
	Rating   float64   `gorm:"column:rating" json:"rating"`
	PhotoURL string    `gorm:"column:photo_url;size:255" json:"photoUrl,omitempty"`
}

func (Ship) TableName() string {
	return "ships"
}

// На проводе prodDate передается миллисекундами эпохи
func (s Ship) MarshalJSON() ([]byte, error) {
	type shipAlias Ship
	return json.Marshal(struct {
		shipAlias
		ProdDate int64 `json:"prodDate"`
	}{
		shipAlias: shipAlias(s),
		ProdDate:  s.ProdDate.UnixMilli(),
	})
}
