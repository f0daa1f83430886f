package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"food_delivery/config"
	"food_delivery/database"
	"food_delivery/handler"
	"food_delivery/helper"
	"food_delivery/router"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // ảnh món ăn tối đa 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Không thể kết nối database: %v", err)
	}
	rdb := database.ConnectRedis()

	helper.StartDailyReportScheduler(db)
	defer helper.StopDailyReportScheduler()

	h := handler.New(db, rdb)
	router.SetupRoutes(app, h, db, rdb)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
