package repository

import (
	"time"

	"gorm.io/gorm"

	"space_ships/internal/app/ds"
)

// shipFilterScopes - по одному замыканию на каждый заданный критерий,
// GORM объединяет их по И
func shipFilterScopes(filter ds.ShipFilter) []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB
	if filter.Name != nil {
		name := *filter.Name
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("name LIKE ?", "%"+name+"%")
		})
	}
	if filter.Planet != nil {
		planet := *filter.Planet
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("planet LIKE ?", "%"+planet+"%")
		})
	}
	if filter.ShipType != nil {
		shipType := *filter.ShipType
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("ship_type = ?", shipType)
		})
	}
	if filter.After != nil {
		after := time.UnixMilli(*filter.After).UTC()
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("prod_date >= ?", after)
		})
	}
	if filter.Before != nil {
		before := time.UnixMilli(*filter.Before).UTC()
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("prod_date < ?", before)
		})
	}
	if filter.IsUsed != nil {
		isUsed := *filter.IsUsed
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("is_used = ?", isUsed)
		})
	}
	if filter.MinSpeed != nil {
		minSpeed := *filter.MinSpeed
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("speed >= ?", minSpeed)
		})
	}
	if filter.MaxSpeed != nil {
		maxSpeed := *filter.MaxSpeed
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("speed <= ?", maxSpeed)
		})
	}
	if filter.MinCrewSize != nil {
		minCrewSize := *filter.MinCrewSize
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("crew_size >= ?", minCrewSize)
		})
	}
	if filter.MaxCrewSize != nil {
		maxCrewSize := *filter.MaxCrewSize
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("crew_size <= ?", maxCrewSize)
		})
	}
	if filter.MinRating != nil {
		minRating := *filter.MinRating
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("rating >= ?", minRating)
		})
	}
	if filter.MaxRating != nil {
		maxRating := *filter.MaxRating
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("rating <= ?", maxRating)
		})
	}
	return scopes
}

func (r *Repository) shipsQuery(filter ds.ShipFilter) *gorm.DB {
	return r.db.Model(&ds.Ship{}).Scopes(shipFilterScopes(filter)...)
}

func (r *Repository) listShipsQuery(filter ds.ShipFilter, order ds.ShipSort, pageNumber int, pageSize int) *gorm.DB {
	// Без явной сортировки порядок фиксируется по id
	column := "id"
	if c, ok := order.Column(); ok {
		column = c
	}
	return r.shipsQuery(filter).
		Order(column).
		Offset(pageNumber * pageSize).
		Limit(pageSize)
}

// ListShips - страница отфильтрованного и отсортированного списка кораблей
func (r *Repository) ListShips(filter ds.ShipFilter, order ds.ShipSort, pageNumber int, pageSize int) ([]ds.Ship, error) {
	ships := make([]ds.Ship, 0)
	err := r.listShipsQuery(filter, order, pageNumber, pageSize).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// CountShips - мощность отфильтрованного множества, без сортировки и страниц
func (r *Repository) CountShips(filter ds.ShipFilter) (int64, error) {
	var count int64
	err := r.shipsQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetShip(id int) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("id = ?", id).First(&ship).Error
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// CreateShip - создание корабля, id присваивает база
func (r *Repository) CreateShip(ship *ds.Ship) error {
	if err := r.db.Create(ship).Error; err != nil {
		return err
	}
	r.invalidateShipsCount()
	return nil
}

// UpdateShip - сохранение уже слитой записи целиком
func (r *Repository) UpdateShip(ship *ds.Ship) error {
	if err := r.db.Save(ship).Error; err != nil {
		return err
	}
	r.invalidateShipsCount()
	return nil
}

// DeleteShip - жесткое удаление корабля
func (r *Repository) DeleteShip(id int) error {
	res := r.db.Where("id = ?", id).Delete(&ds.Ship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateShipsCount()
	return nil
}
