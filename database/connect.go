package database

import (
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"food_delivery/config"
	"food_delivery/model"
)

// ConnectDB mở kết nối Postgres, migrate schema và seed dữ liệu ban đầu.
// Trả về handle để inject vào handler thay vì giữ biến toàn cục.
func ConnectDB() (*gorm.DB, error) {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(db); err != nil {
		return nil, err
	}
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(db)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Dish{},
		&model.Order{},
		&model.OrderItem{},
	)
}
