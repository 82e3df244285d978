package repository

import (
	"context"
	"fmt"
	"time"

	"space_ships/internal/app/ds"
)

var ctx = context.Background()

const (
	shipsCountVersionKey = "ships:count:version"
	shipsCountTTL        = time.Minute
)

// CountShipsCached - счетчик кораблей через кэш. Ключ включает версию,
// которая растет при каждой записи, старые ключи отмирают по TTL.
func (r *Repository) CountShipsCached(filter ds.ShipFilter) (int64, error) {
	if r.redis == nil {
		return r.CountShips(filter)
	}

	version, err := r.redis.Get(ctx, shipsCountVersionKey).Result()
	if err != nil {
		version = "0"
	}
	key := fmt.Sprintf("ships:count:%s:%s", version, filter.CacheKey())

	if cached, err := r.redis.Get(ctx, key).Int64(); err == nil {
		return cached, nil
	}

	count, err := r.CountShips(filter)
	if err != nil {
		return 0, err
	}
	r.redis.Set(ctx, key, count, shipsCountTTL)
	return count, nil
}

// invalidateShipsCount вызывается после каждой записи в ships
func (r *Repository) invalidateShipsCount() {
	if r.redis == nil {
		return
	}
	r.redis.Incr(ctx, shipsCountVersionKey)
}
