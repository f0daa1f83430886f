package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food_delivery/constants"
	"food_delivery/model"
	"food_delivery/utils"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		Email:    "admin@neu.edu.vn",
		FullName: "Quản trị viên",
		Password: string(bytes),
		Role:     constants.ROLE_ADMIN,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	categories := []model.Category{
		{Name: "Món chính", Description: "Cơm, phở, bún các loại"},
		{Name: "Đồ uống", Description: "Trà sữa, nước ngọt, cà phê"},
		{Name: "Ăn vặt", Description: "Đồ ăn nhẹ giữa giờ"},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	dishes := []model.Dish{
		{Name: "Phở bò", Slug: "pho-bo", Price: 45000, ImageUrl: "pho-bo.jpg", CategoryId: utils.Ptr(categories[0].ID)},
		{Name: "Cơm rang dưa bò", Slug: "com-rang-dua-bo", Price: 40000, ImageUrl: "com-rang.jpg", CategoryId: utils.Ptr(categories[0].ID)},
		{Name: "Trà sữa", Slug: "tra-sua", Price: 30000, ImageUrl: "tra-sua.jpg", CategoryId: utils.Ptr(categories[1].ID)},
		{Name: "Nem chua rán", Slug: "nem-chua-ran", Price: 25000, ImageUrl: "nem-chua.jpg", CategoryId: utils.Ptr(categories[2].ID)},
	}
	for _, dish := range dishes {
		if err := db.Where(model.Dish{Slug: dish.Slug}).FirstOrCreate(&dish).Error; err != nil {
			log.Println("failed to seed dish:", dish.Name, "error:", err)
		}
	}
}
