package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"food_delivery/handler"
	"food_delivery/middleware"
	"food_delivery/validate"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, db *gorm.DB, rdb *redis.Client) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), h.Register)
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/refresh-token", h.RefreshToken)
	auth.Post("/logout", middleware.Protected(rdb), h.Logout)
	auth.Get("/me", middleware.Protected(rdb), h.Me)

	category := v1.Group("/categories", logger.New())
	category.Get("/", h.GetCategories)
	category.Post("/", middleware.Protected(rdb), middleware.AdminOnly(db), validate.SaveCategory(), h.SaveCategory)
	category.Put("/:categoryId", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("categoryId"), validate.SaveCategory(), h.UpdateCategory)
	category.Delete("/:categoryId", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("categoryId"), h.DeleteCategory)

	dish := v1.Group("/dishes", logger.New())
	dish.Get("/", h.GetDishes)
	dish.Get("/:dishId", validate.GetById("dishId"), h.GetDishById)
	dish.Post("/", middleware.Protected(rdb), middleware.AdminOnly(db), validate.SaveDish(db), h.SaveDish)
	dish.Put("/:dishId", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("dishId"), validate.SaveDish(db), h.UpdateDish)
	dish.Delete("/:dishId", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("dishId"), h.DeleteDish)
	dish.Post("/:dishId/image", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("dishId"), h.UploadDishImage)

	// Trang chi tiết món ăn theo đường dẫn thân thiện
	v1.Get("/mon-an/:slug", h.GetDishBySlug)

	order := v1.Group("/orders", logger.New())
	order.Post("/", middleware.OptionalJWT(rdb), validate.CreateOrder(), h.CreateOrder)
	order.Get("/", middleware.Protected(rdb), h.GetOrders)
	order.Get("/code/:publicCode", middleware.Protected(rdb), h.GetOrderDetail)
	order.Put("/:orderId/status", middleware.Protected(rdb), middleware.AdminOnly(db), validate.GetById("orderId"), validate.OrderStatus(), h.UpdateOrderStatus)

	v1.Post("/cloudinary-signature", middleware.Protected(rdb), middleware.AdminOnly(db), h.GenerateSignature)

	v1.Get("/statistics", middleware.Protected(rdb), middleware.AdminOnly(db), h.GetStatistics)
}
