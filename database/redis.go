package database

import (
	"github.com/redis/go-redis/v9"

	"food_delivery/config"
)

// ConnectRedis tạo client Redis dùng cho danh sách token đã thu hồi (logout)
func ConnectRedis() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
