package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db    *gorm.DB
	redis *redis.Client
}

func New(dsn string, redisEndpoint string, redisPassword string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Без Redis сервис работает, деградирует только кэш счетчика
	var rdb *redis.Client
	if redisEndpoint != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisEndpoint,
			Password: redisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Warnf("redis unavailable, count cache disabled: %v", err)
			rdb = nil
		}
	}

	return &Repository{
		db:    db,
		redis: rdb,
	}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Redis() *redis.Client {
	return r.redis
}
