package handler

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handler giữ các dependency dùng chung, inject từ main thay vì biến toàn cục
type Handler struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{DB: db, Rdb: rdb}
}
